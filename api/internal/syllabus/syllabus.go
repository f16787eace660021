// Package syllabus holds the static board configuration: which boards the
// service answers for and the class/subject/chapter tables shown to clients.
package syllabus

// AllowedBoards is the closed set of supported examination boards.
// SSLC refers to the Karnataka state board.
var AllowedBoards = map[string]bool{
	"ICSE": true,
	"CBSE": true,
	"SSLC": true,
}

var Classes = []string{"9", "10"}

var Subjects = []string{"Maths", "Physics", "Chemistry", "Biology"}

// Chapters maps a subject to its chapter list for the class-10 syllabus.
var Chapters = map[string][]string{
	"Maths": {
		"Commercial Mathematics",
		"Algebra",
		"Geometry",
		"Mensuration",
		"Trigonometry",
	},
	"Physics": {
		"Force, Work, Power and Energy",
		"Light",
		"Sound",
		"Electricity and Magnetism",
		"Heat",
		"Modern Physics",
	},
	"Chemistry": {
		"Periodic Properties",
		"Chemical Bonding",
		"Acids, Bases and Salts",
		"Mole Concept and Stoichiometry",
		"Electrolysis",
		"Metallurgy",
		"Organic Chemistry",
	},
	"Biology": {
		"Cell Cycle and Cell Division",
		"Genetics",
		"Absorption by Roots",
		"Transpiration",
		"Photosynthesis",
		"Circulatory System",
		"Excretory System",
		"Nervous System",
		"Endocrine System",
		"Reproductive System",
	},
}

func BoardAllowed(board string) bool {
	return AllowedBoards[board]
}
