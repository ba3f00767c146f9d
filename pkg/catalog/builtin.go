package catalog

// Builtin returns the catalog of the ten built-in AI micro-tools.
// Declaration order here is the processing order for every pipeline run.
func Builtin() *Catalog {
	c, err := New(builtinTools())
	if err != nil {
		// The built-in table is static; a failure here is a programming error.
		panic(err)
	}
	return c
}

func builtinTools() []ToolDefinition {
	return []ToolDefinition{
		{
			ID:           "prompt-testing-lab",
			Name:         "AI Prompt Testing Lab",
			Description:  "Interactive tool where users paste prompts, test across different scenarios, compare outputs, and save/version their best prompts.",
			Monetization: "Freemium - limit saves/tests, charge for teams/export features",
			Prompt: PromptSpec{
				InputLabel:       "Your Prompt",
				InputPlaceholder: "Enter your prompt here...",
				InputRows:        6,
				PromptBody:       mustPrompt("prompt-testing-lab"),
			},
			Repo: RepoMetadata{
				Description: "AI Prompt Testing Lab - Interactive tool to test prompts across scenarios, compare outputs, and save/version your best prompts. Built-in templates for common use cases.",
				Topics:      []string{"ai", "prompt-engineering", "claude", "anthropic", "testing", "react", "vite", "frontend", "ai-tools"},
			},
		},
		{
			ID:           "meeting-action-extractor",
			Name:         "Meeting Notes → Action Items Extractor",
			Description:  "Paste meeting transcript or notes, AI extracts action items, assigns priority, suggests owners, and formats for Slack/email/project tools.",
			Monetization: "Pay-per-conversion or monthly subscription",
			Prompt: PromptSpec{
				InputLabel:       "Meeting Notes or Transcript",
				InputPlaceholder: "Paste your meeting notes or transcript here...",
				InputRows:        10,
				PromptBody:       mustPrompt("meeting-action-extractor"),
			},
			Repo: RepoMetadata{
				Description: "Meeting Notes → Action Items Extractor - Paste meeting transcripts, AI extracts action items, assigns priority, suggests owners, and formats for Slack/email/project tools.",
				Topics:      []string{"ai", "meetings", "productivity", "action-items", "claude", "anthropic", "react", "vite", "ai-tools"},
			},
		},
		{
			ID:           "resume-optimizer",
			Name:         "Resume ATS Optimizer",
			Description:  "Upload resume and job description, AI scores ATS compatibility, suggests keyword improvements, reformats for optimal parsing, shows before/after comparison.",
			Monetization: "$9-29 per resume optimization, or monthly unlimited",
			Prompt: PromptSpec{
				InputLabel:       "Resume and Job Description",
				InputPlaceholder: "Paste your resume and the job description here, separated by '---JOB DESCRIPTION---'...",
				InputRows:        15,
				PromptBody:       mustPrompt("resume-optimizer"),
			},
			Repo: RepoMetadata{
				Description: "Resume ATS Optimizer - Upload resume and job description, AI scores ATS compatibility, suggests keyword improvements, and shows before/after comparison.",
				Topics:      []string{"ai", "resume", "ats", "job-search", "career", "claude", "anthropic", "react", "vite", "ai-tools"},
			},
		},
		{
			ID:           "social-media-multiplier",
			Name:         "Social Media Post Multiplier",
			Description:  "Input one idea/post, AI generates versions for Twitter, LinkedIn, Instagram, Facebook with optimal formatting, hashtags, and hooks for each platform.",
			Monetization: "Credit-based system or monthly subscription",
			Prompt: PromptSpec{
				InputLabel:       "Your Post Idea",
				InputPlaceholder: "Enter your post idea or content here...",
				InputRows:        6,
				PromptBody:       mustPrompt("social-media-multiplier"),
			},
			Repo: RepoMetadata{
				Description: "Social Media Post Multiplier - Input one idea/post, AI generates versions for Twitter, LinkedIn, Instagram, Facebook with optimal formatting and hashtags.",
				Topics:      []string{"ai", "social-media", "content-creation", "marketing", "claude", "anthropic", "react", "vite", "ai-tools"},
			},
		},
		{
			ID:           "contract-analyzer",
			Name:         "Contract Red Flag Analyzer",
			Description:  "Paste contract text, AI highlights risky clauses, unfavorable terms, missing protections, and explains implications in plain English.",
			Monetization: "$19-49 per contract analysis",
			Prompt: PromptSpec{
				InputLabel:       "Contract Text",
				InputPlaceholder: "Paste the contract text you want analyzed...",
				InputRows:        15,
				PromptBody:       mustPrompt("contract-analyzer"),
			},
			Repo: RepoMetadata{
				Description: "Contract Red Flag Analyzer - Paste contract text, AI highlights risky clauses, unfavorable terms, missing protections, and explains implications in plain English.",
				Topics:      []string{"ai", "legal", "contracts", "analysis", "claude", "anthropic", "react", "vite", "ai-tools"},
			},
		},
		{
			ID:           "email-response-generator",
			Name:         "Email Response Generator Pro",
			Description:  "Input received email + context, AI generates 3-5 response options (professional, friendly, firm, brief). Learn user's writing style over time.",
			Monetization: "Monthly subscription with usage tiers",
			Prompt: PromptSpec{
				InputLabel:       "Received Email and Context",
				InputPlaceholder: "Paste the email you received and any relevant context...",
				InputRows:        8,
				PromptBody:       mustPrompt("email-response-generator"),
			},
			Repo: RepoMetadata{
				Description: "Email Response Generator Pro - Input received email + context, AI generates 3-5 response options (professional, friendly, firm, brief). Learns your writing style.",
				Topics:      []string{"ai", "email", "productivity", "writing", "claude", "anthropic", "react", "vite", "ai-tools"},
			},
		},
		{
			ID:           "sales-outreach-personalizer",
			Name:         "Sales Outreach Personalizer",
			Description:  "Input prospect LinkedIn/company info + your offer, AI generates personalized cold email with multiple variants and subject lines.",
			Monetization: "Per-email credits or unlimited monthly",
			Prompt: PromptSpec{
				InputLabel:       "Prospect Info and Your Offer",
				InputPlaceholder: "Enter prospect LinkedIn/company info and your offer...",
				InputRows:        8,
				PromptBody:       mustPrompt("sales-outreach-personalizer"),
			},
			Repo: RepoMetadata{
				Description: "Sales Outreach Personalizer - Input prospect LinkedIn/company info + your offer, AI generates personalized cold email with multiple variants and subject lines.",
				Topics:      []string{"ai", "sales", "outreach", "email", "claude", "anthropic", "react", "vite", "ai-tools"},
			},
		},
		{
			ID:           "product-description-generator",
			Name:         "Product Description Generator for E-commerce",
			Description:  "Input basic product details/features, AI generates SEO-optimized descriptions, bullet points, meta descriptions in brand voice. Multiple style options.",
			Monetization: "Bulk credits or monthly subscription",
			Prompt: PromptSpec{
				InputLabel:       "Product Details",
				InputPlaceholder: "Enter product name, features, and any brand voice guidelines...",
				InputRows:        8,
				PromptBody:       mustPrompt("product-description-generator"),
			},
			Repo: RepoMetadata{
				Description: "Product Description Generator for E-commerce - Input product details, AI generates SEO-optimized descriptions, bullet points, meta descriptions in brand voice.",
				Topics:      []string{"ai", "ecommerce", "seo", "product-descriptions", "claude", "anthropic", "react", "vite", "ai-tools"},
			},
		},
		{
			ID:           "interview-prep-coach",
			Name:         "Interview Question Prep Coach",
			Description:  "Input job description, AI generates likely interview questions, provides sample answers, offers feedback on user's practice responses.",
			Monetization: "$29-99 per job prep package",
			Prompt: PromptSpec{
				InputLabel:       "Job Description",
				InputPlaceholder: "Paste the job description here...",
				InputRows:        10,
				PromptBody:       mustPrompt("interview-prep-coach"),
			},
			Repo: RepoMetadata{
				Description: "Interview Question Prep Coach - Input job description, AI generates likely interview questions, provides sample answers, offers feedback on practice responses.",
				Topics:      []string{"ai", "interviews", "career", "job-prep", "claude", "anthropic", "react", "vite", "ai-tools"},
			},
		},
		{
			ID:           "seo-content-optimizer",
			Name:         "Blog Post → SEO Content Optimizer",
			Description:  "Paste blog draft, AI suggests title variations, meta descriptions, heading structure, internal linking opportunities, keyword density improvements.",
			Monetization: "Per-post fee or monthly subscription",
			Prompt: PromptSpec{
				InputLabel:       "Blog Post Draft",
				InputPlaceholder: "Paste your blog post draft here...",
				InputRows:        15,
				PromptBody:       mustPrompt("seo-content-optimizer"),
			},
			Repo: RepoMetadata{
				Description: "Blog Post → SEO Content Optimizer - Paste blog draft, AI suggests title variations, meta descriptions, heading structure, internal linking opportunities, keyword improvements.",
				Topics:      []string{"ai", "seo", "content-marketing", "blogging", "claude", "anthropic", "react", "vite", "ai-tools"},
			},
		},
	}
}
