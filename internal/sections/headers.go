package sections

// projectHeaders open a projects section.
var projectHeaders = []string{
	"projects", "academic projects", "personal projects", "key projects",
	"technical projects", "project experience", "projects undertaken",
	"selected projects", "major projects", "professional projects",
	"project details", "projects summary", "key initiatives",
	"development experience", "significant projects",
}

// projectEndHeaders close a projects section. Internship headers are included
// so that the two sections never bleed into each other.
var projectEndHeaders = []string{
	"education", "skills", "technical skills", "key skills", "skills & achievements",
	"experience", "work experience", "employment", "professional experience",
	"achievements", "certifications", "awards", "languages", "interests",
	"references", "declaration", "summary", "profile", "objective",
	"competitive programming", "courses", "publications", "patents",
	"extra-curricular", "leadership",
	"internships", "internship", "industrial training",
	"in-plant training", "vocational training",
}

// internshipHeaders open an internships section. A bare "experience" is
// accepted because internships are commonly filed under it.
var internshipHeaders = []string{
	"internships", "internship experience", "industrial training",
	"in-plant training", "vocational training", "apprenticeship",
	"summer internship", "winter internship", "work history",
	"professional experience", "experience",
}

// internshipEndHeaders close an internships section.
var internshipEndHeaders = []string{
	"education", "skills", "technical skills", "key skills",
	"projects", "academic projects", "achievements", "certifications",
	"awards", "languages", "interests", "references", "declaration",
	"summary", "profile", "objective",
}

// Projects is the section kind used to locate project entries.
var Projects = Kind{
	Name:         "projects",
	Headers:      projectHeaders,
	OtherHeaders: projectEndHeaders,
	StartSlack:   4,
}

// Internships is the section kind used to locate internship and training entries.
var Internships = Kind{
	Name:         "internships",
	Headers:      internshipHeaders,
	OtherHeaders: internshipEndHeaders,
	StartSlack:   9,
}
