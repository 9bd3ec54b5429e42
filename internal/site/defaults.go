package site

var (
	AboutMe = `I'm a passionate **DevOps Engineer** and Full-Stack Developer with expertise in
automating infrastructure, building scalable applications, and implementing
CI/CD pipelines. My journey in technology has been driven by a fascination
with creating efficient, reliable systems that power the digital world.

With a strong foundation in both development and operations, I specialize in
containerization, cloud platforms, and modern DevOps practices. I believe in
the power of automation to transform how we build and deploy software.`

	ProjectOne = `CI/CD pipeline with Jenkins, Docker, GitHub, AWS EC2. Demonstrates
complete DevOps lifecycle automation.`

	ProjectTwo = `Python-based CLI tool to automate Docker tasks via menu options like
run, remove, logs, image management.`

	ProjectThree = `Flask app integrated with the Twilio API to auto-call predefined
numbers with custom voice messages.`
)

// Default returns the built-in portfolio content.
func Default() Content {
	return Content{
		Name:    "Pradeep Singh Rawat",
		Tagline: "Automating the future, one container and one pipeline at a time.",
		About:   AboutMe,
		Education: []Education{
			{Degree: "MCA", School: "Galgotias University", Period: "2023–2025", Status: "Current"},
			{Degree: "B.Sc. Computer Science", School: "Chinmaya Degree College (HNBGU)", Period: "2020–2023", Status: "Completed"},
		},
		Experience: []Job{
			{
				Title:        "DevOps Engineer",
				Company:      "Freelance",
				Period:       "2023 - Present",
				Location:     "Remote",
				Description:  "Building and maintaining CI/CD pipelines, containerization with Docker, and cloud infrastructure management.",
				Technologies: []string{"Docker", "Jenkins", "AWS", "GitHub Actions", "Kubernetes"},
			},
			{
				Title:        "Software Developer",
				Company:      "Personal Projects",
				Period:       "2022 - Present",
				Location:     "Remote",
				Description:  "Developing full-stack applications, automation scripts, and contributing to open-source projects.",
				Technologies: []string{"Python", "JavaScript", "React", "Node.js", "Flask"},
			},
			{
				Title:        "System Administrator",
				Company:      "Freelance",
				Period:       "2021 - 2023",
				Location:     "Remote",
				Description:  "Managing server infrastructure, implementing security measures, and optimizing system performance.",
				Technologies: []string{"Linux", "Bash", "Docker", "Nginx", "Security"},
			},
		},
		Projects: []Project{
			{Title: "DevOps Project 01", Description: ProjectOne, Technologies: []string{"Jenkins", "Docker", "AWS EC2", "GitHub Actions", "CI/CD"}},
			{Title: "Docker Automation Menu", Description: ProjectTwo, Technologies: []string{"Python", "Docker", "CLI", "Automation", "Linux"}},
			{Title: "Auto Call Bot", Description: ProjectThree, Technologies: []string{"Flask", "Twilio API", "Python", "Voice Automation", "REST API"}},
		},
		Skills: []SkillSet{
			{Title: "DevOps & Tools", Skills: []Skill{{"Docker", 90}, {"Kubernetes", 85}, {"Jenkins", 88}, {"AWS", 82}}},
			{Title: "Cloud & Infra", Skills: []Skill{{"AWS (EC2/S3)", 85}, {"Terraform", 78}, {"Linux", 95}, {"Nginx", 80}, {"CI/CD", 90}}},
			{Title: "Languages", Skills: []Skill{{"Python", 90}, {"Bash", 85}, {"JavaScript", 75}, {"React", 70}, {"Node.js", 65}}},
			{Title: "AI & Automation", Skills: []Skill{{"GenAI", 80}, {"ShellGPT", 85}, {"Automation Scripts", 90}, {"Monitoring", 75}}},
			{Title: "Databases", Skills: []Skill{{"MongoDB", 80}, {"MySQL", 75}}},
		},
		Links: []Link{
			{Title: "Email", Value: "pradeepsrawat1109@gmail.com", Href: "mailto:pradeepsrawat1109@gmail.com"},
			{Title: "Location", Value: "Pauri Garhwal, Uttarakhand"},
			{Title: "GitHub", Value: "Pradeeprawat-01", Href: "https://github.com/Pradeeprawat-01"},
			{Title: "LinkedIn", Value: "pradeep-singh-rawat-9707ard", Href: "https://linkedin.com/in/pradeep-singh-rawat-9707ard"},
		},
	}
}
