// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

// Seed constructors return a fresh value on every call, so callers can never
// mutate the defaults.

// InitialServices returns the default service list.
func InitialServices() []Service {
	return []Service{
		{
			ID:              "1",
			Title:           "UI/UX DESIGN",
			Slug:            "ui-ux-design",
			Description:     "Design of intuitive and visually appealing user interfaces for web and mobile applications, focusing on enhancing the user experience and usability.",
			FullDescription: "Our UI/UX design process begins with thorough research to understand your users' needs and business goals. We create wireframes, prototypes, and interactive designs that prioritize user experience while maintaining brand identity. Our approach leads to interfaces that are not only visually appealing but also functional and intuitive, resulting in higher engagement and conversion rates.",
			Image:           "https://images.unsplash.com/photo-1561070791-2526d30994b5?q=80&w=2000&auto=format&fit=crop",
			Features: []Feature{
				{Title: "User Research", Description: "Deep understanding of user behaviors and needs"},
				{Title: "Wireframing", Description: "Structural layout planning for optimal user flows"},
				{Title: "Prototyping", Description: "Interactive mockups to test functionality"},
				{Title: "Visual Design", Description: "Aesthetically pleasing interfaces aligned with brand identity"},
			},
		},
		{
			ID:              "2",
			Title:           "BRAND STRATEGY",
			Slug:            "brand-strategy",
			Description:     "Comprehensive brand development, including logo creation, color scheme selection, and visual style design to ensure a cohesive and memorable brand identity.",
			FullDescription: "Our brand strategy services help you define and communicate your unique value proposition. We develop comprehensive brand guidelines that ensure consistency across all touchpoints. From logo design to typography selection, color palettes, and voice definition, we create a cohesive brand identity that resonates with your target audience and differentiates you from competitors.",
			Image:           "https://images.unsplash.com/photo-1542744094-3a31f272c490?q=80&w=2070&auto=format&fit=crop",
			Features: []Feature{
				{Title: "Brand Analysis", Description: "Evaluation of current positioning and market perception"},
				{Title: "Identity Design", Description: "Logo, color schemes, and visual elements creation"},
				{Title: "Guidelines Development", Description: "Comprehensive rulebook for brand consistency"},
				{Title: "Implementation Strategy", Description: "Rollout plan for new brand elements"},
			},
		},
		{
			ID:              "3",
			Title:           "MARKETING AND SMM",
			Slug:            "marketing-and-smm",
			Description:     "Creation of impactful advertising campaigns and marketing materials designed to increase brand visibility, engage target audiences, and drive customer acquisition.",
			FullDescription: "Our marketing and social media management services are designed to enhance your brand's online presence and engagement. We develop tailored strategies across multiple platforms, create compelling content, and monitor performance to optimize campaigns. Our approach focuses on building authentic relationships with your audience while driving measurable business results through strategic digital marketing initiatives.",
			Image:           "https://images.unsplash.com/photo-1432888622747-4eb9a8f5f01a?q=80&w=2074&auto=format&fit=crop",
			Features: []Feature{
				{Title: "Strategy Development", Description: "Platform-specific marketing approaches"},
				{Title: "Content Creation", Description: "Engaging posts, graphics, and videos"},
				{Title: "Community Management", Description: "Active audience engagement and relationship building"},
				{Title: "Analytics & Reporting", Description: "Performance tracking and strategy optimization"},
			},
		},
		{
			ID:              "4",
			Title:           "WEB DEVELOPMENT",
			Slug:            "web-development",
			Description:     "Professional website development with modern technologies, responsive design, and performance optimization to provide a seamless user experience across all devices.",
			FullDescription: "Our web development services combine technical expertise with creative design to deliver websites that perform exceptionally well. We employ modern frameworks and best practices to create responsive, fast-loading, and secure websites. From simple landing pages to complex e-commerce platforms, our development team ensures your website is built with clean code, optimized for search engines, and designed for easy maintenance and scalability.",
			Image:           "https://images.unsplash.com/photo-1547658719-da2b51169166?q=80&w=2064&auto=format&fit=crop",
			Features: []Feature{
				{Title: "Custom Development", Description: "Tailored solutions for specific business needs"},
				{Title: "Responsive Design", Description: "Perfect display across all device sizes"},
				{Title: "Performance Optimization", Description: "Fast loading times and efficient code"},
				{Title: "SEO Implementation", Description: "Search engine friendly structure and content"},
			},
		},
		{
			ID:              "5",
			Title:           "APP DEVELOPMENT",
			Slug:            "app-development",
			Description:     "Custom mobile application development for iOS and Android platforms, focusing on performance, user experience, and scalability to meet specific business needs.",
			FullDescription: "Our app development process covers the entire lifecycle from concept to deployment and maintenance. We develop native, hybrid, or cross-platform applications based on your specific requirements. Our team focuses on creating intuitive user experiences, optimizing performance, and ensuring your app is secure and scalable. We also provide comprehensive testing, deployment assistance, and ongoing support to keep your application running smoothly.",
			Image:           "https://images.unsplash.com/photo-1551650975-87deedd944c3?q=80&w=1974&auto=format&fit=crop",
			Features: []Feature{
				{Title: "Native & Cross-Platform", Description: "Development for iOS, Android, or both simultaneously"},
				{Title: "UI/UX Design", Description: "Intuitive and engaging mobile interfaces"},
				{Title: "API Integration", Description: "Seamless connection with external systems"},
				{Title: "Maintenance & Updates", Description: "Ongoing support and feature enhancement"},
			},
		},
	}
}

// InitialTestimonials returns the default testimonials.
func InitialTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:       "1",
			Content:  "TopDesignr transformed our brand identity and digital presence. Their approach is innovative yet strategic, resulting in a website that not only looks stunning but also delivers concrete business results.",
			Author:   "Alexandra Chen",
			Position: "CEO",
			Company:  "Nova Innovations",
			Image:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=987&auto=format&fit=crop",
		},
		{
			ID:       "2",
			Content:  "Working with TopDesignr has been a game-changer for our marketing efforts. Their team's attention to detail and ability to translate our vision into reality exceeded our expectations.",
			Author:   "Marcus Johnson",
			Position: "Marketing Director",
			Company:  "Pulse Media",
			Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=987&auto=format&fit=crop",
		},
		{
			ID:       "3",
			Content:  "The redesign of our e-commerce platform by TopDesignr led to a 40% increase in conversion rates. Their understanding of user experience and aesthetic sensibilities is unmatched in the industry.",
			Author:   "Sophia Rodriguez",
			Position: "Product Lead",
			Company:  "Ember Tech",
			Image:    "https://images.unsplash.com/photo-1580489944761-15a19d654956?q=80&w=1022&auto=format&fit=crop",
		},
	}
}

// InitialProjects returns the default portfolio.
func InitialProjects() []Project {
	return []Project{
		{
			ID:              "1",
			Title:           "Lumina Brand Identity",
			Category:        "Branding",
			Description:     "Complete brand identity redesign for a leading technology firm, including logo, color palette, typography, and brand guidelines.",
			FullDescription: "The Lumina Brand Identity project involved a comprehensive redesign of the company's visual identity to better reflect their innovative approach to technology solutions. We developed a modern, versatile logo system, established a vibrant yet professional color palette, and created detailed guidelines to ensure consistent brand application across all touchpoints.",
			Technologies:    []string{"Adobe Illustrator", "Adobe Photoshop", "Brand Strategy"},
			Client:          "Lumina Technologies",
			Date:            "January 2023",
			Image:           "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?q=80&w=2064&auto=format&fit=crop",
			Gallery: []string{
				"https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?q=80&w=2064&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1635405446109-56639631a29e?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?q=80&w=2070&auto=format&fit=crop",
			},
			Width:        "80%",
			Height:       "80vh",
			MobileHeight: "50vh",
			Align:        AlignRight,
			Margin:       "ml-auto",
		},
		{
			ID:              "2",
			Title:           "Vertex App Interface",
			Category:        "UI/UX Design",
			Description:     "User interface design for a financial management mobile application, focusing on user experience, accessibility, and visual appeal.",
			FullDescription: "The Vertex App Interface project required creating an intuitive, accessible mobile interface for a complex financial management application. Our design approach prioritized clarity and ease of use while maintaining sophisticated functionality. We employed a user-centered design process, conducting extensive research and usability testing to refine the interface.",
			Technologies:    []string{"Figma", "Prototyping", "User Testing"},
			Client:          "Vertex Financial",
			Date:            "March 2023",
			Image:           "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?q=80&w=2072&auto=format&fit=crop",
			Gallery: []string{
				"https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?q=80&w=2072&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1555774698-0b77e0d5fac6?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=2070&auto=format&fit=crop",
			},
			Width:        "65%",
			Height:       "60vh",
			MobileHeight: "40vh",
			Align:        AlignLeft,
			Margin:       "mr-auto",
		},
		{
			ID:              "3",
			Title:           "Skyline Website Redesign",
			Category:        "Web Development",
			Description:     "Complete overhaul of a corporate website, including responsive design, content management system integration, and performance optimization.",
			FullDescription: "The Skyline Website Redesign project involved transforming an outdated corporate website into a modern, responsive platform that effectively communicates the company's services and values. We implemented a custom content management system, optimized site performance, and ensured accessibility compliance while maintaining a sleek, professional design aesthetic.",
			Technologies:    []string{"React", "Tailwind CSS", "WordPress", "PHP"},
			Client:          "Skyline Industries",
			Date:            "May 2023",
			Link:            "https://www.skylineindustries.com",
			Image:           "https://images.unsplash.com/photo-1557804506-669a67965ba0?q=80&w=1974&auto=format&fit=crop",
			Gallery: []string{
				"https://images.unsplash.com/photo-1557804506-669a67965ba0?q=80&w=1974&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1460925895917-afdab827c52f?q=80&w=2015&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1581291518857-4e27b48ff24e?q=80&w=2070&auto=format&fit=crop",
			},
			Width:        "95%",
			Height:       "90vh",
			MobileHeight: "60vh",
			Align:        AlignCenter,
			Margin:       "mx-auto",
		},
		{
			ID:              "4",
			Title:           "Echo E-commerce Platform",
			Category:        "E-commerce",
			Description:     "Development of a custom e-commerce platform for a boutique retailer, including inventory management, payment processing, and customer accounts.",
			FullDescription: "The Echo E-commerce Platform project required developing a specialized online shopping experience for a high-end boutique retailer. We created a custom e-commerce solution that seamlessly integrated with their inventory system, implemented secure payment processing, and designed an intuitive shopping experience that showcased their premium products effectively.",
			Technologies:    []string{"React", "Node.js", "MongoDB", "Stripe API"},
			Client:          "Echo Boutique",
			Date:            "August 2023",
			Link:            "https://www.echoboutique.com",
			Image:           "https://images.unsplash.com/photo-1460925895917-afdab827c52f?q=80&w=2015&auto=format&fit=crop",
			Gallery: []string{
				"https://images.unsplash.com/photo-1460925895917-afdab827c52f?q=80&w=2015&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1523206489230-c012c64b2b48?q=80&w=2187&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1612277795421-9bc7706a4a41?q=80&w=1949&auto=format&fit=crop",
			},
			Width:        "50%",
			Height:       "50vh",
			MobileHeight: "40vh",
			Align:        AlignRight,
			Margin:       "ml-auto",
		},
	}
}

// InitialContactMessages returns the sample inbox shown before any real
// submission arrives.
func InitialContactMessages() []ContactMessage {
	return []ContactMessage{
		{
			ID:      "1",
			Name:    "John Doe",
			Email:   "john@example.com",
			Message: "I'm interested in your web development services. Could you provide more information about your pricing?",
			Date:    "2023-09-15T10:30:00Z",
			IsRead:  true,
		},
		{
			ID:      "2",
			Name:    "Sarah Smith",
			Email:   "sarah@example.com",
			Message: "Hello, I would like to discuss a potential brand strategy project for my startup.",
			Date:    "2023-09-14T14:45:00Z",
		},
		{
			ID:      "3",
			Name:    "Michael Johnson",
			Email:   "michael@example.com",
			Message: "Your portfolio looks impressive! I need help with a mobile app for my business. When can we schedule a call?",
			Date:    "2023-09-13T09:15:00Z",
		},
	}
}

// InitialWebsiteContent returns the default landing page document.
func InitialWebsiteContent() WebsiteContent {
	return WebsiteContent{
		Hero: Section{
			Title:       "Creative Design Studio",
			Subtitle:    "Design • Development • Marketing",
			Description: "We create beautiful, functional designs and digital experiences that help businesses grow and succeed in the digital landscape.",
			ButtonText:  "Get Started",
			ButtonLink:  "#contact",
			Image:       "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?q=80&w=2064&auto=format&fit=crop",
		},
		About: Section{
			Title:       "About Us",
			Subtitle:    "Our Story",
			Description: "We are a team of passionate designers, developers, and marketers who are dedicated to helping businesses succeed in the digital world.",
			Image:       "https://images.unsplash.com/photo-1557804506-669a67965ba0?q=80&w=1974&auto=format&fit=crop",
		},
		KeyNumbers: KeyNumbersSection{
			Section: Section{Title: "Our Achievements", Subtitle: "By the Numbers"},
			Numbers: []KeyNumber{
				{ID: "happy-clients", Title: "Happy Clients", Value: "250+", Icon: "Users"},
				{ID: "projects-completed", Title: "Projects Completed", Value: "500+", Icon: "CheckCircle"},
				{ID: "years-of-experience", Title: "Years of Experience", Value: "10+", Icon: "Clock"},
				{ID: "awards-won", Title: "Awards Won", Value: "25+", Icon: "Trophy"},
			},
		},
		Pricing: PricingSection{
			Section: Section{
				Title:       "Our Pricing",
				Subtitle:    "Simple, Transparent Pricing",
				Description: "Choose the plan that fits your needs",
			},
			Plans: []PricingPlan{
				{
					ID:    "basic",
					Title: "Basic",
					Price: "$999",
					Features: []string{
						"Custom Design",
						"Responsive Website",
						"Basic SEO",
						"30 Days Support",
					},
				},
				{
					ID:    "professional",
					Title: "Professional",
					Price: "$1,999",
					Features: []string{
						"Everything in Basic",
						"Advanced SEO",
						"E-commerce Integration",
						"90 Days Support",
						"Content Migration",
					},
					Popular: true,
				},
				{
					ID:    "enterprise",
					Title: "Enterprise",
					Price: "$4,999",
					Features: []string{
						"Everything in Professional",
						"Custom Features",
						"Priority Support",
						"1 Year Maintenance",
						"Marketing Strategy",
						"Dedicated Account Manager",
					},
				},
			},
		},
		Contact: ContactSection{
			Section: Section{
				Title:       "Contact Us",
				Subtitle:    "Get in Touch",
				Description: "Have a project in mind? Let's talk about it.",
			},
			Items: []ContactItem{
				{ID: "email", Title: "Email", Value: "hello@topdesignr.com", Icon: "Mail"},
				{ID: "phone", Title: "Phone", Value: "+1 (555) 123-4567", Icon: "Phone"},
				{ID: "address", Title: "Address", Value: "123 Design Street, Creative City, 10001", Icon: "MapPin"},
			},
		},
		Footer: FooterSection{
			Section: Section{
				Title:       "TopDesignr",
				Description: "Creating beautiful digital experiences since 2014.",
			},
			Links: []FooterLinkGroup{
				{
					ID:    "services",
					Title: "Services",
					Items: []FooterLink{
						{Label: "UI/UX Design", URL: "/services/ui-ux-design"},
						{Label: "Brand Strategy", URL: "/services/brand-strategy"},
						{Label: "Web Development", URL: "/services/web-development"},
						{Label: "App Development", URL: "/services/app-development"},
					},
				},
				{
					ID:    "company",
					Title: "Company",
					Items: []FooterLink{
						{Label: "About", URL: "/#about"},
						{Label: "Portfolio", URL: "/#portfolio"},
						{Label: "Pricing", URL: "/#pricing"},
						{Label: "Contact", URL: "/#contact"},
					},
				},
				{
					ID:    "legal",
					Title: "Legal",
					Items: []FooterLink{
						{Label: "Privacy Policy", URL: "/privacy"},
						{Label: "Terms of Service", URL: "/terms"},
					},
				},
			},
		},
	}
}
