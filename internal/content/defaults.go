package content

import "github.com/edgeup/edgeup-api/internal/entity"

// pageTypes lists the block types each public page template expects.
var pageTypes = map[string][]entity.BlockType{
	"home":         {entity.BlockHero, entity.BlockFeatures, entity.BlockTestimonials, entity.BlockPartners, entity.BlockCTA},
	"product":      {entity.BlockText, entity.BlockCTA},
	"about":        {entity.BlockText, entity.BlockCTA},
	"institutions": {entity.BlockText, entity.BlockCTA},
	"news":         {entity.BlockText, entity.BlockCTA},
}

// PageTypes returns the expected block set for a page. Unknown pages get the
// generic text+cta pair so the caller still renders something sensible.
func PageTypes(pageKey string) []entity.BlockType {
	if types, ok := pageTypes[pageKey]; ok {
		return types
	}
	return []entity.BlockType{entity.BlockText, entity.BlockCTA}
}

type pageType struct {
	page string
	t    entity.BlockType
}

// defaultFor returns the compiled-in block for a (page, type) pair. Pages
// without a bespoke default for the type fall back to the generic default of
// that type, so the result always carries a payload of the right shape.
func defaultFor(pageKey string, t entity.BlockType) entity.ContentBlock {
	payload, ok := pageDefaults[pageType{pageKey, t}]
	if !ok {
		payload = typeDefaults[t]
	}
	return entity.ContentBlock{PageKey: pageKey, Type: t, Payload: payload}
}

var pageDefaults = map[pageType]entity.BlockPayload{
	{"home", entity.BlockHero}: entity.HeroPayload{
		Title:           "AI-Powered Learning. Built for Institutions. Personalised for Learners.",
		Subtitle:        "EdgeUp functions as an embedded study companion, enabling partners to offer adaptive learning journeys, smart content delivery, contextual nudges, and real-time learner support powered by proprietary AI models.",
		PrimaryCTA:      entity.CTALink{Text: "Book a Demo", URL: "/contact?demo=true"},
		SecondaryCTA:    entity.CTALink{Text: "Partner With Us", URL: "/contact"},
		BackgroundImage: "https://images.pexels.com/photos/8199562/pexels-photo-8199562.jpeg?auto=compress&cs=tinysrgb&w=1600",
	},
	{"home", entity.BlockFeatures}: entity.FeaturesPayload{
		Title:    "Transform Learning with AI-Powered Precision",
		Subtitle: "Our platform helps institutions prepare students for UPSC, state exams, and other competitive tests with personalized learning experiences.",
		Items: []entity.FeatureItem{
			{ID: "1", Title: "Psychometric Profiling", Description: "Understand each learner's unique cognitive profile, learning style, and motivation patterns to create tailored study paths.", Icon: "Brain"},
			{ID: "2", Title: "Adaptive Testing Engine", Description: "Advanced algorithms that adjust question difficulty based on student performance, maximizing assessment effectiveness.", Icon: "BarChart"},
			{ID: "3", Title: "Smart Study Plans", Description: "AI-generated study schedules that optimize learning and retention based on individual strengths and weaknesses.", Icon: "CalendarClock"},
			{ID: "4", Title: "Seamless Integration", Description: "Works with your existing LMS or as a standalone platform, making implementation fast and hassle-free.", Icon: "Layers"},
		},
	},
	{"home", entity.BlockTestimonials}: entity.TestimonialsPayload{
		Title:    "Trusted by Leading Educational Institutions",
		Subtitle: "See what our partners have to say about the impact of EdgeUp on their students' success.",
		Items: []entity.TestimonialItem{
			{ID: "1", Quote: "EdgeUp has transformed how we prepare students for UPSC. The personalized insights give our teachers powerful tools to support each student's journey.", Name: "Rajiv Sharma", Position: "Director", Institution: "Delhi IAS Academy", Avatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1600"},
			{ID: "2", Quote: "The adaptive testing technology has significantly improved our assessment capabilities. Our students feel more confident and perform better in competitive exams.", Name: "Priya Patel", Position: "CEO", Institution: "NextGen Learning Solutions", Avatar: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1600"},
			{ID: "3", Quote: "Implementing EdgeUp was seamless. Their team understood our needs and the platform has exceeded our expectations in enhancing student outcomes.", Name: "Anil Kumar", Position: "Founder", Institution: "Achievers NEET Academy", Avatar: "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=1600"},
		},
	},
	{"home", entity.BlockPartners}: entity.PartnersPayload{
		Title:    "Our Partners & Investors",
		Subtitle: "Backed by leading education institutions and investors who believe in our vision.",
		Items: []entity.PartnerItem{
			{ID: "1", Name: "Enlighten Capital", Logo: "https://placehold.co/200x80/e2e8f0/475569?text=Enlighten+Capital&font=montserrat"},
			{ID: "2", Name: "National Education Alliance", Logo: "https://placehold.co/200x80/e2e8f0/475569?text=NEA&font=montserrat"},
			{ID: "3", Name: "Future Academy", Logo: "https://placehold.co/200x80/e2e8f0/475569?text=Future+Academy&font=montserrat"},
			{ID: "4", Name: "Bright Ventures", Logo: "https://placehold.co/200x80/e2e8f0/475569?text=Bright+Ventures&font=montserrat"},
			{ID: "5", Name: "EdTech Innovators", Logo: "https://placehold.co/200x80/e2e8f0/475569?text=EdTech+Innovators&font=montserrat"},
		},
	},
	{"home", entity.BlockCTA}: entity.CTAPayload{
		Title:    "Ready to Transform Education at Your Institution?",
		Subtitle: "Join the growing network of forward-thinking institutions using EdgeUp to deliver personalized learning experiences.",
		CTA:      entity.CTALink{Text: "Book a Demo Today", URL: "/contact?demo=true"},
	},
	{"about", entity.BlockCTA}: entity.CTAPayload{
		Title:    "Ready to Transform Education at Your Institution?",
		Subtitle: "Join the growing network of forward-thinking institutions using EdgeUp to deliver personalized learning experiences.",
		CTA:      entity.CTALink{Text: "Book a Demo Today", URL: "/contact?demo=true"},
	},
	{"product", entity.BlockCTA}: entity.CTAPayload{
		Title:    "Ready to Transform Your Institution?",
		Subtitle: "Join the growing network of forward-thinking institutions using EdgeUp to deliver personalized learning experiences.",
		CTA:      entity.CTALink{Text: "Book a Demo Today", URL: "/contact?demo=true"},
	},
	{"institutions", entity.BlockCTA}: entity.CTAPayload{
		Title:    "Ready to Transform Your Institution?",
		Subtitle: "Join the growing network of forward-thinking institutions using EdgeUp to deliver personalized learning experiences.",
		CTA:      entity.CTALink{Text: "Book a Demo Today", URL: "/contact?demo=true"},
	},
	{"news", entity.BlockCTA}: entity.CTAPayload{
		Title:    "Want to Learn More About EdgeUp?",
		Subtitle: "Schedule a demo to see how our AI-powered platform can transform learning at your institution.",
		CTA:      entity.CTALink{Text: "Book a Demo", URL: "/contact?demo=true"},
	},
}

// typeDefaults cover pages with no bespoke copy for a block type.
var typeDefaults = map[entity.BlockType]entity.BlockPayload{
	entity.BlockHero: entity.HeroPayload{
		Title:      "AI-Powered Learning for Institutions",
		Subtitle:   "Adaptive learning journeys, smart content delivery, and real-time learner support.",
		PrimaryCTA: entity.CTALink{Text: "Book a Demo", URL: "/contact?demo=true"},
	},
	entity.BlockFeatures: entity.FeaturesPayload{
		Title: "What EdgeUp Offers",
		Items: []entity.FeatureItem{},
	},
	entity.BlockTestimonials: entity.TestimonialsPayload{
		Title: "What Our Partners Say",
		Items: []entity.TestimonialItem{},
	},
	entity.BlockPartners: entity.PartnersPayload{
		Title: "Our Partners & Investors",
		Items: []entity.PartnerItem{},
	},
	entity.BlockCTA: entity.CTAPayload{
		Title:    "Ready to Transform Education at Your Institution?",
		Subtitle: "Join the growing network of forward-thinking institutions using EdgeUp to deliver personalized learning experiences.",
		CTA:      entity.CTALink{Text: "Book a Demo Today", URL: "/contact?demo=true"},
	},
	entity.BlockText: entity.TextPayload{
		Title: "EdgeUp",
		Body:  "EdgeUp bridges traditional coaching with intelligent, outcome-oriented learning through proprietary AI models and frameworks.",
	},
}
