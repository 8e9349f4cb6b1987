package content

// Site-wide copy for the home, about and chrome sections.

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Owner struct {
	Name     string
	Title    string
	Handle   string
	Status   string
	Email    string
	Phone    string
	Location string
	Avatar   string
}

type FeaturedProject struct {
	Title       string
	Subtitle    string
	Description string
	Tech        []string
	LiveDemo    string
	Details     string
	Image       string
}

type Card struct {
	Title   string
	Content string
}

type Stat struct {
	Value string
	Label string
}

type Testimonial struct {
	Initials string
	Name     string
	Role     string
	Quote    string
}

type TimelineEntry struct {
	Year        string
	Title       string
	Company     string
	Kind        string // "work" or "education"
	Description string
	Skills      []string
}

type Skill struct {
	Name  string
	Level int
}

type SkillCategory struct {
	Title  string
	Skills []Skill
}

type Hobby struct {
	Name        string
	Description string
}

var SiteOwner = Owner{
	Name:     "Chandan Sharma",
	Title:    "Software Developer",
	Handle:   "chandan25sharma",
	Status:   "Available for work",
	Email:    "mrchandansharma25@gmail.com",
	Phone:    "+977 9704714937",
	Location: "Kathmandu, Nepal",
	Avatar:   "https://i.postimg.cc/tCqwvn7V/Chat-GPT-Image-Aug-3-2025-05-53-07-PM.png",
}

var (
	SiteTitle       = "Portfolio - Software Developer"
	SiteDescription = "A modern portfolio showcasing software development projects and expertise"

	HeroIntro = "Passionate about creating innovative solutions and building amazing software experiences " +
		"with modern technologies and best practices."

	AboutTeaser = "I'm a passionate software developer with 3+ years of experience building scalable web " +
		"applications. I specialize in ML, DL, AI & full-stack development with modern Python & JavaScript " +
		"frameworks and have a keen eye for creating intuitive user experiences."

	FooterBlurb = "A passionate software developer crafting innovative solutions and beautiful digital " +
		"experiences. Always learning, always building."

	ContactCTA = "Ready to bring your ideas to life? I'm available for freelance projects, full-time " +
		"opportunities, and exciting collaborations."

	AboutStory = []string{
		"Hey there! I'm a passionate software developer who believes in the power of code to transform ideas " +
			"into reality. My journey in tech started during university, where I discovered the perfect blend of " +
			"creativity and logic that programming offers.",
		"With over 3 years of professional experience, I've had the privilege of working with diverse teams " +
			"and technologies, from startups to established companies. I specialize in AI Tools/ ML & full-stack " +
			"development with a focus on Python, Java & React, Node.js, and modern web technologies.",
		"What drives me is the constant opportunity to learn and solve complex problems. Whether it's " +
			"optimizing database queries, making AI tools and machine learning to make data-driven decisions, " +
			"crafting intuitive user interfaces, or architecting scalable systems, I approach each challenge with " +
			"curiosity and determination.",
	}
)

var NavLinks = []Link{
	{Label: "Home", Href: "/"},
	{Label: "About", Href: "/about"},
	{Label: "Projects", Href: "/projects"},
	{Label: "Research", Href: "/research"},
	{Label: "Contact", Href: "/contact"},
}

var SocialLinks = []Link{
	{Label: "GitHub", Href: "https://github.com/chandan25sharma"},
	{Label: "LinkedIn", Href: "https://www.linkedin.com/in/chandan-sharma-55558b288"},
	{Label: "Twitter", Href: "https://twitter.com/Chandan38643005"},
	{Label: "CodePen", Href: "https://codepen.io/Chandan25sharma"},
	{Label: "Dribbble", Href: "https://dribbble.com/mrchandansharma25"},
}

var TechLogos = []Link{
	{Label: "React", Href: "https://react.dev"},
	{Label: "Next.js", Href: "https://nextjs.org"},
	{Label: "TypeScript", Href: "https://www.typescriptlang.org"},
	{Label: "Tailwind CSS", Href: "https://tailwindcss.com"},
	{Label: "Node.js", Href: "https://nodejs.org"},
	{Label: "Python", Href: "https://python.org"},
	{Label: "PostgreSQL", Href: "https://postgresql.org"},
	{Label: "JavaScript", Href: "https://developer.mozilla.org/en-US/docs/Web/JavaScript"},
	{Label: "Git", Href: "https://git-scm.com"},
	{Label: "Docker", Href: "https://docker.com"},
	{Label: "MongoDB", Href: "https://mongodb.com"},
	{Label: "GraphQL", Href: "https://graphql.org"},
}

var FeaturedProjects = []FeaturedProject{
	{
		Title:       "Coderspae",
		Subtitle:    "Real-time Coding Battle Platform",
		Description: "Interactive competitive coding platform with real-time battles and live spectators.",
		Tech:        []string{"Next.js", "Socket.io", "React", "Node.js"},
		LiveDemo:    "https://coderspae.com",
		Details:     "/projects",
		Image:       "/images/bgimg3.jpg",
	},
	{
		Title:       "BlueCollar App",
		Subtitle:    "Home Services Booking Platform",
		Description: "On-demand platform connecting users with local professionals for home services.",
		Tech:        []string{"React Native", "Node.js", "MongoDB", "Stripe"},
		LiveDemo:    "#",
		Details:     "/projects",
		Image:       "/images/bgimg7.jpg",
	},
	{
		Title:       "Portfolio Builder SaaS",
		Subtitle:    "Developer Portfolio Generator",
		Description: "SaaS platform for developers to generate animated portfolios using templates and AI assistance.",
		Tech:        []string{"React", "TailwindCSS", "Node.js", "AI"},
		LiveDemo:    "#",
		Details:     "/projects",
		Image:       "/images/ecommerce-preview.jpg",
	},
}

var HighlightCards = []Card{
	{"E-commerce Platform", "Full-stack e-commerce platform with real-time inventory and payment integration."},
	{"Team Collaboration App", "Real-time collaboration platform with video calls and document sharing."},
	{"AI Analytics Dashboard", "Machine learning powered analytics dashboard with predictive insights and data visualization."},
	{"AI Image Generation Tool", "Text-to-image generator built using Stable Diffusion and OpenAI API for creating custom visuals."},
	{"Real-time Service Booking App", "On-demand platform connecting users with local professionals for home services."},
	{"AI Code Assistant", "AI-powered code assistant that provides real-time suggestions, debugging help, and code generation."},
	{"Realtime Coding Battle Platform", "Interactive competitive coding platform with real-time battles and live spectators."},
	{"AI Resume Analyzer", "NLP-based resume analyzer that scores resumes based on skill relevance and job fit."},
	{"Voice-Controlled Smart Dashboard", "Voice-assisted IoT dashboard with AI command recognition and data visualization."},
	{"Portfolio Builder SaaS", "SaaS platform for developers to generate animated portfolios using templates and AI assistance."},
}

var Stats = []Stat{
	{"3+", "Years Experience"},
	{"100+", "GitHub Repositories"},
	{"100k+", "Lines of Code"},
	{"25+", "Projects Completed"},
	{"15+", "Happy Clients"},
	{"500+", "Cups of Coffee"},
}

var Testimonials = []Testimonial{
	{
		Initials: "KL",
		Name:     "karuchola Lakshmi Sasidhar",
		Role:     "Cloud and Devops Enthusiastic, F5 technology pvt.ltd",
		Quote:    "Exceptional problem-solving skills and attention to detail. Delivered our project ahead of schedule with outstanding quality.",
	},
	{
		Initials: "DA",
		Name:     "Dhruba Adhikari",
		Role:     "Chief Technology Officer, Khalti Pvt.Ltd",
		Quote:    "Great communication and technical expertise. The web app performance improved by 40% after optimization.",
	},
	{
		Initials: "RS",
		Name:     "Ram Sharma",
		Role:     "RJE technology pvt.ltd",
		Quote:    "Innovative solutions and clean code architecture. A valuable team player with excellent collaboration skills.",
	},
}

var Timeline = []TimelineEntry{
	{
		Year:        "2025",
		Title:       "IT Specializes - AI/ML & Full-Stack Development",
		Company:     "Al-Mahroos sons & co.",
		Kind:        "work",
		Description: "Leading development of scalable AI-tools to automate the sales process in web applications using React, Node.js, and Oracle SQL.",
		Skills:      []string{"Python", "SQL", "React", "Node.js", "TypeScript"},
	},
	{
		Year:        "2024",
		Title:       "System Administrator & Web Handler",
		Company:     "RJE Technology Pvt. Ltd.",
		Kind:        "work",
		Description: "Built and maintained Web applications, focusing on performance optimization and user experience.",
		Skills:      []string{"Vue.js", "Python", "MongoDB", "Docker"},
	},
	{
		Year:        "2020",
		Title:       "Bachelor Degree in Computer Science (2020 - 2024)",
		Company:     "JNTU-Kakinada",
		Kind:        "education",
		Description: "Computer Science Engineering with a focus on ML and Software Development.",
		Skills:      []string{"Python", "Machine Learning", "Data Science", "JavaScript"},
	},
}

var SkillCategories = []SkillCategory{
	{
		Title: "Frontend",
		Skills: []Skill{
			{"React", 95}, {"Next.js", 90}, {"TypeScript", 88}, {"Tailwind CSS", 92}, {"JavaScript", 94},
		},
	},
	{
		Title: "Backend",
		Skills: []Skill{
			{"Node.js", 87}, {"Python", 85}, {"PostgreSQL", 82}, {"MongoDB", 80}, {"SQL", 84},
		},
	},
	{
		Title: "Tools & DevOps",
		Skills: []Skill{
			{"Git", 90}, {"Docker", 78}, {"Figma", 75},
		},
	},
}

var Hobbies = []Hobby{
	{"Coding Side Projects", "Building fun apps and experimenting with new tech"},
	{"Animating", "Bringing illustrations to life"},
	{"Gaming", "Strategy games and indie titles"},
	{"Music", "Playing guitar and producing electronic music"},
	{"Photography", "Capturing moments and urban landscapes"},
}
