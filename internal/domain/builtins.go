package domain

// Builtins returns the built-in domain handlers, registered in this
// order at startup. The list is deliberately static: no directory
// scanning, no reflection. Externally-managed handlers come from the
// plugins manifest directory instead.
func Builtins() []Handler {
	specs := []RuleSpec{
		healthcareSpec(),
		fintechSpec(),
		ecommerceSpec(),
		realEstateSpec(),
		beekeepingSpec(),
		customerSupportSpec(),
		fitnessAppSpec(),
		trafficManagementSpec(),
		mobileAppSpec(),
		visualWorkflowSpec(),
		enterpriseSpec(),
		restaurantManagementSpec(),
		gamingStudioSpec(),
	}

	handlers := make([]Handler, 0, len(specs))
	for _, s := range specs {
		handlers = append(handlers, NewRuleHandler(s))
	}
	return handlers
}

func healthcareSpec() RuleSpec {
	return RuleSpec{
		DomainName: "healthcare",
		Keywords: []string{
			"healthcare", "medical", "patient", "hospital", "clinic", "hipaa",
			"doctor", "nurse", "appointment", "prescription", "diagnosis",
			"treatment", "medical record", "health", "wellness", "telemedicine",
		},
		// Heavily regulated domain
		PriorityScore: 5,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"patient", "medical", "health", "hipaa"},
				Title:    "HIPAA Compliance and Data Security Framework",
				Priority: PriorityHigh, Category: CategoryNonFunctional,
			},
			{
				Triggers: []string{"patient", "medical record", "chart"},
				Title:    "Electronic Health Records (EHR) Management System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"appointment", "schedule", "booking"},
				Title:    "Medical Appointment Scheduling and Calendar System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"prescription", "medication", "drug", "pharmacy"},
				Title:    "Prescription Management and Drug Interaction System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"telemedicine", "virtual", "remote", "video call"},
				Title:    "Telemedicine Platform with Video Consultation",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"billing", "insurance", "claim"},
				Title:    "Medical Billing and Insurance Claims Processing",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Patients", "Healthcare Providers", "IT Security Team", "Development Team"},
		StakeholderRules: []StakeholderRule{
			{Triggers: []string{"doctor", "physician"}, Stakeholders: []string{"Doctors/Physicians"}},
			{Triggers: []string{"nurse", "nursing"}, Stakeholders: []string{"Nurses"}},
			{Triggers: []string{"admin", "administrator"}, Stakeholders: []string{"Hospital Administrators"}},
			{Triggers: []string{"compliance", "hipaa"}, Stakeholders: []string{"Compliance Officers"}},
			{Triggers: []string{"pharmacy", "pharmacist"}, Stakeholders: []string{"Pharmacists"}},
		},
	}
}

func fintechSpec() RuleSpec {
	return RuleSpec{
		DomainName: "fintech",
		Keywords: []string{
			"finance", "banking", "payment", "financial", "trading", "investment",
			"crypto", "blockchain", "wallet", "transaction", "money", "currency",
			"loan", "credit", "debit", "account", "balance", "fintech",
		},
		// Regulated and security-critical
		PriorityScore: 5,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"financial", "payment", "banking", "money"},
				Title:    "Financial Security and Regulatory Compliance Framework",
				Priority: PriorityHigh, Category: CategoryNonFunctional,
			},
			{
				Triggers: []string{"payment", "transaction", "transfer", "money"},
				Title:    "Secure Payment Processing and Transaction System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"account", "balance", "wallet", "portfolio"},
				Title:    "Financial Account Management and Balance Tracking",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"trading", "investment", "stock", "market"},
				Title:    "Trading Platform and Investment Management System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"fraud", "risk", "monitoring"},
				Title:    "Fraud Detection and Risk Monitoring System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Account Holders", "Compliance Officers", "Development Team"},
	}
}

func ecommerceSpec() RuleSpec {
	return RuleSpec{
		DomainName: "ecommerce",
		Keywords: []string{
			"ecommerce", "e-commerce", "shopping", "cart", "product", "order",
			"payment", "checkout", "store", "retail", "inventory", "catalog",
			"marketplace", "merchant", "customer", "purchase", "sale",
		},
		PriorityScore: 4,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"product", "catalog", "inventory", "item"},
				Title:    "Product Catalog Management and Inventory System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"cart", "shopping", "basket", "add to cart"},
				Title:    "Shopping Cart and Session Management System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"payment", "checkout", "billing", "credit card"},
				Title:    "Secure Payment Processing and Checkout System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"order", "purchase", "transaction", "sale"},
				Title:    "Order Management and Processing System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"customer", "account", "profile", "login"},
				Title:    "Customer Account Management and Profile System",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Customers", "Merchants", "Development Team"},
	}
}

func realEstateSpec() RuleSpec {
	return RuleSpec{
		DomainName: "real_estate",
		Keywords: []string{
			"property", "real estate", "mls", "tenant", "lease", "rent", "listing",
			"property management", "rental", "landlord", "maintenance", "vacancy",
			"apartment", "commercial", "residential", "portfolio", "unit",
			"application", "screening", "deposit", "eviction", "inspection",
		},
		PriorityScore: 4,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"listing", "property", "mls"},
				Title:    "Property Listing Management System with MLS Integration",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"tenant", "resident", "renter", "lease"},
				Title:    "Comprehensive Tenant Management and Lease Tracking System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"rent", "collection", "billing"},
				Title:    "Automated Rent Collection and Payment Processing System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"maintenance", "repair", "work order"},
				Title:    "Maintenance Request Management and Work Order System",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"portfolio", "multiple", "properties", "units"},
				Title:    "Multi-Property Portfolio Management Dashboard",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Tenants", "Property Managers", "Landlords", "Development Team"},
	}
}

func beekeepingSpec() RuleSpec {
	return RuleSpec{
		DomainName: "beekeeping",
		Keywords: []string{
			"hive", "honey", "bees", "apiary", "colony", "queen", "pollen",
			"nectar", "swarm", "beekeeping", "beekeeper", "honeycomb",
			"brood", "worker", "drone", "royal jelly", "propolis", "wax",
		},
		PriorityScore: 4,
		Rules: []Rule{
			{
				Triggers: []string{"hive", "colony"},
				Title:    "Hive Management System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"honey", "production", "harvest"},
				Title:    "Honey Production Tracking",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"disease", "mite", "varroa"},
				Title:    "Colony Health Monitoring",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"seasonal", "winter", "migration", "feeding"},
				Title:    "Seasonal Management",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Beekeepers", "Apiary Managers", "Development Team"},
	}
}

func customerSupportSpec() RuleSpec {
	return RuleSpec{
		DomainName: "customer_support",
		Keywords: []string{
			"support", "ticket", "helpdesk", "customer service", "agent",
			"escalation", "call center",
		},
		// Most generic domain, lowest tie-break weight
		PriorityScore: 1,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"ticket", "support", "helpdesk", "case"},
				Title:    "Intelligent Ticket Management and Routing System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"agent", "staff", "representative", "operator"},
				Title:    "Support Agent Dashboard and Workload Management",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"escalation", "escalate", "urgent"},
				Title:    "Automated Escalation and Priority Management System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"knowledge base", "documentation", "self-service"},
				Title:    "Self-Service Knowledge Base and FAQ System",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"salesforce", "crm", "customer data"},
				Title:    "CRM Integration and Customer Data Synchronization",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"phone", "telephony", "voice", "pbx"},
				Title:    "Telephony System Integration and Call Management",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
		},
	}
}

func fitnessAppSpec() RuleSpec {
	return RuleSpec{
		DomainName: "fitness_app",
		Keywords: []string{
			"fitness", "workout", "nutrition", "health", "wellness", "exercise",
			"trainer", "meal", "calorie", "step", "wearable", "fitbit",
			"apple watch", "strava",
		},
		PriorityScore: 4,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"workout", "exercise", "fitness", "training"},
				Title:    "Comprehensive Workout Tracking and Exercise Logging System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"nutrition", "food", "meal", "calorie", "diet", "eating"},
				Title:    "Nutrition Tracking with Barcode Scanning and Food Database",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"apple watch", "fitbit", "wearable", "smartwatch", "heart rate"},
				Title:    "Wearable Device Integration (Apple Watch, Fitbit, Heart Rate Monitors)",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"trainer", "coach", "personal", "professional", "instructor"},
				Title:    "Personal Trainer Management and Coaching Platform",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"social", "community", "friend", "share", "challenge", "leaderboard"},
				Title:    "Social Features and Community Platform with Challenges",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"strava", "myfitnesspal", "apple health", "google fit", "integration"},
				Title:    "Third-Party Fitness App Integration (Strava, Apple Health, Google Fit)",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"mobile", "app", "ios", "android"},
				Title:    "Cross-Platform Mobile Application with Offline Sync",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"progress", "goal", "achievement", "analytics", "report"},
				Title:    "Progress Tracking and Goal Achievement Analytics",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Fitness Enthusiasts", "Personal Trainers", "Health Professionals"},
		StakeholderRules: []StakeholderRule{
			{Triggers: []string{"social", "community"}, Stakeholders: []string{"Community Members"}},
			{Triggers: []string{"premium", "subscription"}, Stakeholders: []string{"Premium Subscribers"}},
		},
	}
}

func trafficManagementSpec() RuleSpec {
	return RuleSpec{
		DomainName: "traffic_management",
		Keywords: []string{
			"traffic", "transportation", "smart city", "municipal", "emergency",
			"camera", "sensor", "routing",
		},
		PriorityScore: 3,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"camera", "sensor", "monitoring", "detection"},
				Title:    "Traffic Camera Integration and Sensor Network Management",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"mobile", "citizen", "public", "user"},
				Title:    "Mobile Application for Citizen Traffic Information and Reporting",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"emergency", "ambulance", "fire", "police", "routing"},
				Title:    "Emergency Vehicle Priority Routing and Traffic Signal Control",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"analytics", "dashboard", "planning", "data", "insight"},
				Title:    "Traffic Analytics Dashboard for Urban Planning and Operations",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"api", "third-party", "integration", "external"},
				Title:    "RESTful API for Third-Party Traffic Data Integration",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"environment", "air quality", "pollution", "green"},
				Title:    "Environmental Impact Monitoring and Air Quality Integration",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Traffic Authorities", "Citizens", "Emergency Services", "City Planners"},
		StakeholderRules: []StakeholderRule{
			{Triggers: []string{"government", "municipal"}, Stakeholders: []string{"Government Agencies"}},
			{Triggers: []string{"developer"}, Stakeholders: []string{"Development Team"}},
		},
	}
}

func mobileAppSpec() RuleSpec {
	return RuleSpec{
		DomainName: "mobile_app",
		Keywords: []string{
			"mobile", "app", "ios", "android", "smartphone", "tablet",
			"react native", "flutter", "swift", "kotlin", "mobile app",
			"push notification", "offline", "touch", "gesture", "camera",
		},
		PriorityScore: 4,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"ios", "android", "mobile", "app"},
				Title:    "Cross-Platform Mobile App Development (iOS/Android)",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"login", "auth", "user", "account"},
				Title:    "Mobile User Authentication and Profile Management",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"offline", "cache", "sync", "local storage"},
				Title:    "Offline Data Storage and Synchronization",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"notification", "push", "alert", "message"},
				Title:    "Push Notification System and Messaging",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"camera", "photo", "video", "media", "image"},
				Title:    "Camera Integration and Media Capture System",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"touch", "gesture", "swipe", "tap", "pinch"},
				Title:    "Touch-Optimized User Interface with Gesture Support",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			// Broad triggers so any mobile document carries this.
			{
				Triggers: []string{"mobile", "app", "ios", "android", "smartphone"},
				Title:    "Mobile Performance Optimization and Battery Efficiency",
				Priority: PriorityMedium, Category: CategoryNonFunctional,
			},
		},
		BaseStakeholders: []string{"Mobile Users", "UI/UX Designers", "Mobile Developers", "Development Team"},
		StakeholderRules: []StakeholderRule{
			{Triggers: []string{"ios", "iphone", "ipad"}, Stakeholders: []string{"iOS Users"}},
			{Triggers: []string{"android", "google play"}, Stakeholders: []string{"Android Users"}},
			{Triggers: []string{"testing", "qa"}, Stakeholders: []string{"Mobile QA Testers"}},
			{Triggers: []string{"store", "publish", "deployment"}, Stakeholders: []string{"App Store Managers"}},
		},
	}
}

func visualWorkflowSpec() RuleSpec {
	return RuleSpec{
		DomainName: "visual_workflow",
		Keywords: []string{
			"canvas", "visual", "workflow", "drag", "drop", "flowchart",
			"diagram", "node", "edge", "graph", "builder", "designer",
			"visual editor", "flow builder", "process designer",
		},
		PriorityScore: 4,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"canvas", "visual", "draw", "design"},
				Title:    "Interactive Canvas System with Zoom and Pan Controls",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"drag", "drop", "draggable", "move"},
				Title:    "Drag-and-Drop Interface with Node Manipulation",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"node", "element", "component", "block"},
				Title:    "Node Creation and Management System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"connection", "edge", "link", "flow"},
				Title:    "Node Connection and Edge Management System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"workflow", "process", "logic", "automation"},
				Title:    "Workflow Logic Engine and Process Execution",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"template", "preset", "library", "gallery"},
				Title:    "Template Library and Pre-built Component System",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"export", "import", "save", "load"},
				Title:    "Workflow Export/Import and Sharing System",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Visual Designers", "Workflow Users", "UI/UX Team", "Development Team"},
		StakeholderRules: []StakeholderRule{
			{Triggers: []string{"business", "analyst"}, Stakeholders: []string{"Business Analysts"}},
			{Triggers: []string{"process", "automation"}, Stakeholders: []string{"Process Managers"}},
			{Triggers: []string{"admin", "administrator"}, Stakeholders: []string{"System Administrators"}},
		},
	}
}

func enterpriseSpec() RuleSpec {
	return RuleSpec{
		DomainName: "enterprise",
		Keywords: []string{
			"enterprise", "compliance", "security", "corporate", "governance",
			"audit", "policy", "sso", "ldap", "active directory", "rbac",
			"scalability", "high availability", "disaster recovery",
		},
		PriorityScore: 4,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"security", "enterprise", "corporate"},
				Title:    "Enterprise Security Framework and Access Control",
				Priority: PriorityHigh, Category: CategoryNonFunctional,
			},
			{
				Triggers: []string{"sso", "single sign-on", "authentication", "ldap"},
				Title:    "Single Sign-On (SSO) and Directory Integration",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"rbac", "role", "permission", "access control"},
				Title:    "Role-Based Access Control (RBAC) System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"compliance", "audit", "governance", "policy"},
				Title:    "Compliance Management and Audit Trail System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"scalability", "scale", "performance", "load"},
				Title:    "Enterprise Scalability and Performance Framework",
				Priority: PriorityHigh, Category: CategoryNonFunctional,
			},
			{
				Triggers: []string{"availability", "uptime", "redundancy", "failover"},
				Title:    "High Availability and Disaster Recovery System",
				Priority: PriorityMedium, Category: CategoryNonFunctional,
			},
			{
				Triggers: []string{"integration", "api", "enterprise", "legacy"},
				Title:    "Enterprise System Integration and API Gateway",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Enterprise Users", "IT Administrators", "Security Team", "Development Team"},
		StakeholderRules: []StakeholderRule{
			{Triggers: []string{"compliance", "audit"}, Stakeholders: []string{"Compliance Officers"}},
			{Triggers: []string{"executive", "management"}, Stakeholders: []string{"Executive Leadership"}},
			{Triggers: []string{"admin", "administrator"}, Stakeholders: []string{"System Administrators"}},
			{Triggers: []string{"legal", "policy"}, Stakeholders: []string{"Legal Team"}},
		},
	}
}

func restaurantManagementSpec() RuleSpec {
	return RuleSpec{
		DomainName: "restaurant_management",
		Keywords: []string{
			"restaurant", "menu", "orders", "kitchen", "waitstaff", "pos",
			"reservations", "tables", "dining", "food", "beverage", "chef",
			"inventory", "ingredients", "recipes", "takeout", "delivery",
			"restaurant management", "food service", "hospitality", "dining room",
		},
		PriorityScore: 4,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"menu", "dishes", "recipes", "ingredients"},
				Title:    "Digital Menu Management System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"orders", "pos", "payment", "checkout"},
				Title:    "Point of Sale (POS) Integration",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"tables", "reservations", "booking", "seating"},
				Title:    "Table and Reservation Management",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"kitchen", "chef", "cooking", "preparation"},
				Title:    "Kitchen Display System (KDS)",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"staff", "waitstaff", "servers", "scheduling"},
				Title:    "Staff Scheduling and Management",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"inventory", "ingredients", "supplies", "stock"},
				Title:    "Inventory and Supply Management",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"delivery", "takeout", "pickup", "online orders"},
				Title:    "Delivery and Takeout Management",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Restaurant Owners", "Kitchen Staff", "Waitstaff", "Customers"},
		StakeholderRules: []StakeholderRule{
			{Triggers: []string{"manager", "management"}, Stakeholders: []string{"Restaurant Managers"}},
			{Triggers: []string{"chef", "head chef", "kitchen"}, Stakeholders: []string{"Head Chef"}},
			{Triggers: []string{"bartender", "bar", "drinks"}, Stakeholders: []string{"Bar Staff"}},
			{Triggers: []string{"host", "hostess", "seating"}, Stakeholders: []string{"Host/Hostess Staff"}},
			{Triggers: []string{"delivery", "driver"}, Stakeholders: []string{"Delivery Drivers"}},
			{Triggers: []string{"supplier", "vendor", "distributor"}, Stakeholders: []string{"Food Suppliers"}},
			{Triggers: []string{"health", "inspection", "compliance"}, Stakeholders: []string{"Health Inspectors"}},
		},
	}
}

func gamingStudioSpec() RuleSpec {
	return RuleSpec{
		DomainName: "gaming_studio_management",
		Keywords: []string{
			"game", "gaming", "multiplayer", "players", "unity", "unreal",
			"esports", "battle royale", "game development", "game engine",
			"player progression", "anti-cheat", "microtransaction", "gaming studio",
			"game design", "qa testing", "game analytics", "live ops",
			"monetization", "player retention", "game balance", "patch",
			"tournament", "competitive", "console", "steam", "epic games",
		},
		PriorityScore: 4,
		CrossCutting:  true,
		Rules: []Rule{
			{
				Triggers: []string{"unity", "unreal", "game engine", "cross-platform"},
				Title:    "Game Engine Integration and Development Framework",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"multiplayer", "networking", "server", "real-time"},
				Title:    "Multiplayer Networking and Server Architecture",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"player", "progression", "unlockable", "battle pass"},
				Title:    "Player Progression and Reward Systems",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"anti-cheat", "cheat", "security", "detection"},
				Title:    "Anti-Cheat and Game Security System",
				Priority: PriorityHigh, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"economy", "microtransaction", "virtual currency", "monetization"},
				Title:    "In-Game Economy and Monetization Platform",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"analytics", "dashboard", "behavior", "balancing", "live ops"},
				Title:    "Game Analytics and Live Operations Dashboard",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"community", "clan", "social", "friend", "chat"},
				Title:    "Community Management and Social Features",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
			{
				Triggers: []string{"esports", "tournament", "competitive", "bracket"},
				Title:    "Esports Tournament and Competitive Play System",
				Priority: PriorityMedium, Category: CategoryFunctional,
			},
		},
		BaseStakeholders: []string{"Game Developers", "Game Designers", "QA Testers", "Players"},
		StakeholderRules: []StakeholderRule{
			{Triggers: []string{"artist", "art", "3d", "graphics"}, Stakeholders: []string{"Game Artists"}},
			{Triggers: []string{"community", "social", "moderation"}, Stakeholders: []string{"Community Managers"}},
			{Triggers: []string{"esports", "tournament", "competitive"}, Stakeholders: []string{"Esports Coordinators"}},
			{Triggers: []string{"support", "customer", "ticket"}, Stakeholders: []string{"Player Support Team"}},
			{Triggers: []string{"marketing", "monetization", "revenue"}, Stakeholders: []string{"Marketing and Monetization Team"}},
			{Triggers: []string{"producer", "project", "management"}, Stakeholders: []string{"Game Producers"}},
			{Triggers: []string{"platform", "steam", "console", "mobile"}, Stakeholders: []string{"Platform Partners"}},
		},
	}
}
