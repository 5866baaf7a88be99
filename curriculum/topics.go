package curriculum

import "studyhub/models"

// topicTables holds the fixed semester curriculum: 9 term-1 topics and 8
// term-2 topics per subject, indexed by week-1.
var topicTables = map[models.Subject][]string{
	models.SubjectMaths: {
		"Algebraic expressions and factorisation",
		"Linear equations and inequalities",
		"Quadratic equations",
		"Functions and graphs",
		"Trigonometric ratios",
		"Trigonometric identities",
		"Sequences and series",
		"Exponents and logarithms",
		"Term 1 revision and mixed problems",
		"Coordinate geometry of the line",
		"Circle geometry",
		"Differentiation basics",
		"Applications of differentiation",
		"Statistics: data representation",
		"Probability fundamentals",
		"Financial mathematics",
		"Semester exam preparation",
	},
	models.SubjectPhysics: {
		"Units, measurement and vectors",
		"Motion in one dimension",
		"Motion in two dimensions",
		"Newton's laws of motion",
		"Work, energy and power",
		"Momentum and collisions",
		"Circular motion and gravitation",
		"Mechanical waves",
		"Term 1 revision and practicals",
		"Sound and the Doppler effect",
		"Electrostatics",
		"Electric circuits",
		"Electromagnetism",
		"Optics: reflection and refraction",
		"Thermal physics",
		"Modern physics introduction",
		"Semester exam preparation",
	},
	models.SubjectChemistry: {
		"Atomic structure and isotopes",
		"The periodic table and trends",
		"Chemical bonding",
		"Intermolecular forces",
		"The mole and stoichiometry",
		"Chemical reactions and equations",
		"Acids and bases",
		"Redox reactions",
		"Term 1 revision and lab skills",
		"Rates of reaction",
		"Chemical equilibrium",
		"Energy changes in reactions",
		"Organic chemistry: hydrocarbons",
		"Organic chemistry: functional groups",
		"Polymers and materials",
		"Electrochemistry",
		"Semester exam preparation",
	},
	models.SubjectEnglish: {
		"Comprehension strategies",
		"Narrative writing",
		"Poetry: imagery and sound devices",
		"Poetry: tone and theme",
		"Novel study: plot and character",
		"Novel study: themes and context",
		"Persuasive writing",
		"Visual literacy and advertising",
		"Term 1 revision and essay practice",
		"Drama study: plot and staging",
		"Drama study: character and conflict",
		"Transactional writing",
		"Language structures and conventions",
		"Summary writing",
		"Oral presentation skills",
		"Critical literacy and media",
		"Semester exam preparation",
	},
}

// subjectNames maps subject ids to display names used in task and exam titles.
var subjectNames = map[models.Subject]string{
	models.SubjectMaths:     "Maths",
	models.SubjectPhysics:   "Physics",
	models.SubjectChemistry: "Chemistry",
	models.SubjectEnglish:   "English",
}
