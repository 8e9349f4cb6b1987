package content

type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
)

// Project is one entry of the project gallery.
type Project struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	LongDescription string        `json:"long_description"`
	Image           string        `json:"image"`
	Technologies    []string      `json:"technologies"`
	Features        []string      `json:"features,omitempty"`
	GithubURL       string        `json:"github_url"`
	LiveURL         string        `json:"live_url"`
	Slug            string        `json:"slug"`
	Category        string        `json:"category"`
	Status          ProjectStatus `json:"status"`
}

// Projects returns the gallery in display order. The slice is shared; callers
// must not modify it.
func Projects() []Project {
	return projects
}

// ProjectByID looks up a project by its id.
func ProjectByID(id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

var projects = []Project{
	{
		ID:          "alungus-ai",
		Title:       "Alungus AI Web Suite",
		Description: "An advanced AI web platform for image, video, audio, 3D content generation, and intelligent chatbot interaction.",
		LongDescription: "A complete web-based AI application featuring powerful content generation tools. Includes Stable Diffusion, " +
			"AnimateDiff, Bark TTS, MusicGen, and Threestudio, alongside LLM integration via Ollama. Built with Next.js 15 and TypeScript, " +
			"it offers modern UI, multiple authentication methods, and seamless AI interaction through local or Colab-hosted models.",
		Image: "/images/Alungus.jpg",
		Technologies: []string{
			"Next.js 15", "TypeScript", "Tailwind CSS", "Framer Motion", "NextAuth.js",
			"MongoDB", "Ollama", "shadcn/ui", "Radix UI",
		},
		Features: []string{
			"Stable Diffusion SDXL for image generation",
			"AnimateDiff and ModelScope for video generation",
			"Bark TTS and MusicGen for audio synthesis",
			"Threestudio for 3D content creation",
			"LLM-powered chatbot with Ollama (LLaMA 3, Mistral, etc.)",
			"Multi-provider authentication (Google, GitHub, X, Outlook)",
			"Email/password login with JWT session handling",
			"Responsive dark/light themed UI",
			"Framer Motion for animation effects",
		},
		GithubURL: "https://github.com/Chandan25sharma/Alungus-AI",
		LiveURL:   "https://alungus-ai.vercel.app/",
		Slug:      "alungus-ai-platform",
		Category:  "AI Web Platform",
		Status:    StatusCompleted,
	},
	{
		ID:          "ecommerce-platform",
		Title:       "Shoplungu E-commerce",
		Description: "A modern e-commerce solution with payment integration, inventory management, and admin dashboard.",
		LongDescription: "A full-featured e-commerce platform built with modern web technologies. Includes user authentication, " +
			"payment processing, inventory management, and a comprehensive admin dashboard for managing products, orders, and customers.",
		Image:        "/images/Eshopping.jpg",
		Technologies: []string{"Next.js", "TypeScript", "Stripe", "Supabase", "Tailwind CSS", "Zustand"},
		Features: []string{
			"Secure payment processing",
			"Inventory management system",
			"User authentication and profiles",
			"Admin dashboard with analytics",
			"Product search and filtering",
			"Order tracking and management",
		},
		GithubURL: "https://github.com/Chandan25sharma/Shoplungu-E-commerce",
		LiveURL:   "https://shoplungu-e-commerce.vercel.app/login",
		Slug:      "ecommerce-platform",
		Category:  "E-commerce",
		Status:    StatusCompleted,
	},
	{
		ID:          "amutec",
		Title:       "Amutec - Complete PDF Tools & AI Resume Analyzer, Image Processing & JSON Converter",
		Description: "A comprehensive web application for professional PDF editing, file conversion, and AI-powered resume analysis.",
		LongDescription: "Amutec is a production-ready PDF processing platform built with Next.js 15 that offers a complete suite " +
			"of tools for editing, converting, annotating, and securing PDF documents. It also includes an AI-powered resume analyzer that " +
			"provides smart career advice. Designed with a modern UI, batch processing support, and responsive design, it rivals top " +
			"platforms like SmallPDF and ILovePDF.",
		Image: "/images/Amutec.jpg",
		Technologies: []string{
			"Next.js 15", "TypeScript", "Tailwind CSS", "React", "Lucide React",
			"PDF-lib", "PDF.js", "OpenAI API",
		},
		Features: []string{
			"Merge, split, compress, and repair PDFs",
			"Organize, rotate, and secure PDF pages",
			"Add text, shapes, highlights, and annotations",
			"Convert PDFs to and from Word, Excel, PPT, JPG",
			"Universal converter: PDF ↔ DOCX, XLSX, PPTX, JSON, XML",
			"AI-powered resume analysis with suggestions",
			"Batch file processing",
			"Drag-and-drop uploads with real-time feedback",
			"OCR and text extraction (Premium)",
			"Advanced DPI, quality, and permission settings",
			"Mobile responsive and fully styled with Tailwind",
			"Production-ready API routes for all PDF operations",
		},
		GithubURL: "https://github.com/Chandan25sharma/Amutec",
		LiveURL:   "https://amutec.vercel.app/",
		Slug:      "amutec-pdf-tools",
		Category:  "Productivity",
		Status:    StatusCompleted,
	},
	{
		ID:          "tour-travel-booking",
		Title:       "Tour & Travel Booking Platform",
		Description: "A web platform where users can explore, plan, and book their tours and travel destinations with ease.",
		LongDescription: "An interactive tour and travel management system that allows users to browse destinations, customize " +
			"tour packages, and make bookings online. The platform supports itinerary planning, online payments, and customer reviews, " +
			"providing a seamless travel experience.",
		Image:        "/images/Tour-AndTravel.jpg",
		Technologies: []string{"Next.js", "Node.js", "Express", "MongoDB", "Stripe API", "Tailwind CSS"},
		Features: []string{
			"Destination exploration and package customization",
			"Online booking and payment integration",
			"User registration and profile management",
			"Itinerary planning and booking history tracking",
			"Customer reviews and ratings",
			"Responsive and user-friendly design",
		},
		GithubURL: "https://github.com/Chandan25sharma/Tour-FIxer",
		LiveURL:   "https://tour-f-ixer.vercel.app/",
		Slug:      "tour-travel-booking",
		Category:  "Web Application",
		Status:    StatusCompleted,
	},
	{
		ID:              "task-manager",
		Title:           "Advanced Task Manager",
		Description:     "A full-stack task management app with real-time collaboration, drag-and-drop, and team workspaces.",
		LongDescription: "A comprehensive project management solution combining modern web technologies to create a powerful and intuitive task management experience.",
		Image:           "/images/Taskmanager.jpg",
		Technologies:    []string{"React", "Node.js", "Express", "MongoDB", "Socket.io", "Redux Toolkit"},
		Features: []string{
			"Drag-and-drop task organization",
			"Real-time team collaboration",
			"Custom project templates",
			"Time tracking and analytics",
			"File attachments and comments",
			"Mobile-responsive interface",
		},
		GithubURL: "https://github.com/Chandan25sharma/Advanced-Task_Manager",
		LiveURL:   "https://advanced-task-manager-jade.vercel.app/",
		Slug:      "task-manager",
		Category:  "Web Application",
		Status:    StatusCompleted,
	},
	{
		ID:              "data-visualization",
		Title:           "Data Visualization Dashboard",
		Description:     "Interactive dashboard for data analysis with real-time charts, filtering capabilities, and export functionality.",
		LongDescription: "A comprehensive data visualization tool that transforms complex datasets into interactive, meaningful charts and graphs.",
		Image:           "/images/datavisual.jpg",
		Technologies:    []string{"React", "D3.js", "Chart.js", "Python", "FastAPI", "PostgreSQL"},
		Features: []string{
			"Interactive charts and graphs",
			"Real-time data updates",
			"Advanced filtering and search",
			"Multiple export formats",
			"Responsive design",
			"Custom chart configurations",
		},
		GithubURL: "https://github.com/Chandan25sharma/sales-forecasting",
		LiveURL:   "https://sales-forecasting-tau.vercel.app/",
		Slug:      "data-visualization",
		Category:  "Data Science",
		Status:    StatusCompleted,
	},
	{
		ID:          "ai-research-assistant",
		Title:       "AI-Driven Autonomous Research Assistant",
		Description: "An AI system designed to autonomously analyze literature, extract knowledge, and generate hypotheses.",
		LongDescription: "This assistant automates scientific discovery: reading papers, building knowledge graphs, generating " +
			"hypotheses, and suggesting experiments using deep learning, symbolic AI, and neuro-symbolic reasoning.",
		Image: "/images/AI-research.jpg",
		Technologies: []string{
			"Python", "SciBERT", "BioBERT", "GPT-4o", "Neo4j", "NetworkX",
			"PDFMiner", "PyMuPDF", "Reinforcement Learning", "Symbolic AI",
		},
		GithubURL: "https://github.com/Chandan25sharma/AI-RESEARCH-Assistant",
		LiveURL:   "https://ai-research-assistant-psi.vercel.app/",
		Slug:      "ai-research-assistant",
		Category:  "AI Research Tool",
		Status:    StatusInProgress,
	},
	{
		ID:              "neurosymbolic-ai-framework",
		Title:           "Neurosymbolic Programming Framework for Explainable AI Agents",
		Description:     "A hybrid AI framework combining neural networks with symbolic reasoning for transparent AI decisions.",
		LongDescription: "This project merges deep learning with symbolic logic programming to build explainable AI agents capable of both pattern recognition and logical inference.",
		Image:           "/images/neurosymbolic-framework-preview.jpg",
		Technologies:    []string{"Python", "PyTorch", "Prolog Integration", "Neuro-Symbolic Reasoning", "Knowledge Graph APIs"},
		GithubURL:       "https://github.com/Chandan25sharma/Neurosymbolic-agent",
		LiveURL:         "https://neurosymbolic-agent.vercel.app/",
		Slug:            "neurosymbolic-ai-framework",
		Category:        "AI Framework",
		Status:          StatusInProgress,
	},
	{
		ID:              "ai-chatbot",
		Title:           "AI-Powered Chatbot",
		Description:     "A sophisticated chatbot built with Next.js and OpenAI API, featuring natural language processing and context-aware responses.",
		LongDescription: "A modern chatbot using OpenAI's GPT API to provide intelligent, context-aware responses with conversation history and multi-thread support.",
		Image:           "/images/Aipoerw112.jpg",
		Technologies:    []string{"Next.js", "TypeScript", "OpenAI API", "Tailwind CSS", "Prisma", "PostgreSQL"},
		GithubURL:       "https://github.com/yourusername/ai-chatbot",
		LiveURL:         "https://ai-chatbot-demo.vercel.app",
		Slug:            "ai-chatbot",
		Category:        "AI/ML",
		Status:          StatusCompleted,
	},
}
