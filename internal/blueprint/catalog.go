// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package blueprint

import "github.com/halcyon-media/lander-engine/pkg/types"

// catalog holds every landing-page design. Section types repeat within a
// design on purpose: each occurrence of content_block receives a
// different instruction from the instruction compiler, keyed by its
// position among blocks of the same type.
var catalog = []types.Blueprint{
	// --- travel ---
	{
		Name:        "travel_route",
		Vertical:    types.VerticalTravel,
		Intent:      types.IntentRouteSpecific,
		Description: "Route planning guide between two cities",
		H1Template:  "{origin} to {destination}: Complete Travel Guide",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // route overview
			types.SectionComparisonTable, // airline/mode comparison
			types.SectionContentBlock,    // booking strategy deep dive
			types.SectionChecklist,       // pre-booking checklist
			types.SectionCalculator,      // savings calculator
			types.SectionTips,            // money-saving tips
			types.SectionContentBlock,    // seasonal analysis
			types.SectionScorecard,       // route quality scorecard
			types.SectionContentBlock,    // airport & transit guide
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionComparisonTable,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Search {origin} to {destination} Options", Position: types.CTABoth},
	},
	{
		Name:        "travel_destination",
		Vertical:    types.VerticalTravel,
		Intent:      types.IntentDestinationSpecific,
		Description: "Destination guide for a specific city/region",
		H1Template:  "Travel Guide: Getting to {destination} — What You Need to Know",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // destination overview
			types.SectionScorecard,       // destination scorecard
			types.SectionContentBlock,    // how to get there
			types.SectionComparisonTable, // flight options comparison
			types.SectionChecklist,       // travel preparation checklist
			types.SectionCalculator,      // trip budget calculator
			types.SectionTips,            // local travel tips
			types.SectionContentBlock,    // accommodation & transport
			types.SectionContentBlock,    // best time to visit
			types.SectionProsCons,        // destination pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionTips,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Search Flights to {destination}", Position: types.CTABoth},
	},
	{
		Name:        "travel_pricing",
		Vertical:    types.VerticalTravel,
		Intent:      types.IntentPricing,
		Description: "Flight/hotel price analysis and comparison",
		H1Template:  "{keyword}: Understanding Pricing & How to Save",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionPricingTable,
			types.SectionContentBlock,    // pricing factors explained
			types.SectionCalculator,      // savings calculator
			types.SectionContentBlock,    // seasonal pricing analysis
			types.SectionComparisonTable, // competitor price comparison
			types.SectionChecklist,       // price-drop monitoring checklist
			types.SectionTips,            // how to find lower prices
			types.SectionContentBlock,    // advanced booking strategies
			types.SectionProsCons,        // platform pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionPricingTable,
			types.SectionTips, types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Compare Current Prices", Position: types.CTABoth},
	},

	// --- b2b_saas ---
	{
		Name:        "saas_pricing",
		Vertical:    types.VerticalB2BSaaS,
		Intent:      types.IntentPricing,
		Description: "Software pricing analysis and plan breakdown",
		H1Template:  "{brand} Pricing Breakdown — Plans, Features & Value Analysis",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionPricingTable,
			types.SectionContentBlock,    // plan-by-plan deep dive
			types.SectionCalculator,      // cost calculator
			types.SectionContentBlock,    // hidden costs & gotchas
			types.SectionComparisonTable, // vs competitors pricing
			types.SectionScorecard,       // value scorecard
			types.SectionContentBlock,    // who each plan is for
			types.SectionChecklist,       // plan selection checklist
			types.SectionTips,            // negotiation & saving tips
			types.SectionProsCons,        // pricing model pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionPricingTable,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "View {brand} Plans", Position: types.CTABoth},
	},
	{
		Name:        "saas_comparison",
		Vertical:    types.VerticalB2BSaaS,
		Intent:      types.IntentComparison,
		Description: "Software comparison between competing products",
		H1Template:  "{keyword}: Feature-by-Feature Analysis",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionComparisonTable, // feature comparison matrix
			types.SectionContentBlock,    // detailed strengths & weaknesses
			types.SectionScorecard,       // head-to-head scorecard
			types.SectionContentBlock,    // real-world use case analysis
			types.SectionProsCons,        // side-by-side pros & cons
			types.SectionContentBlock,    // migration & switching costs
			types.SectionChecklist,       // evaluation checklist
			types.SectionTips,            // decision-making tips
			types.SectionContentBlock,    // expert recommendations
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionComparisonTable,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Learn More", Position: types.CTAAfterContent},
	},
	{
		Name:        "saas_validation",
		Vertical:    types.VerticalB2BSaaS,
		Intent:      types.IntentValidation,
		Description: "Product validation — is it right for you?",
		H1Template:  "{brand}: An In-Depth Look at Features, Pros & Considerations",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // what it does & how it works
			types.SectionScorecard,       // product scorecard
			types.SectionContentBlock,    // key features deep dive
			types.SectionComparisonTable, // feature matrix
			types.SectionContentBlock,    // real user scenarios
			types.SectionProsCons,        // comprehensive pros & cons
			types.SectionContentBlock,    // who it's for
			types.SectionChecklist,       // "is it right for you?" checklist
			types.SectionTips,            // getting the most out of it
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionContentBlock,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Visit {brand}", Position: types.CTAAfterContent},
	},

	// --- ecommerce ---
	{
		Name:        "ecommerce_buying_guide",
		Vertical:    types.VerticalEcommerce,
		Intent:      types.IntentTransactional,
		Description: "Product buying guide with research and recommendations",
		H1Template:  "{keyword}: A Practical Buying Guide",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // what to look for
			types.SectionScorecard,       // product evaluation scorecard
			types.SectionComparisonTable, // top options comparison
			types.SectionContentBlock,    // budget breakdown by tier
			types.SectionCalculator,      // value calculator
			types.SectionChecklist,       // pre-purchase checklist
			types.SectionTips,            // shopping tips
			types.SectionSteps,           // how to buy
			types.SectionProsCons,        // buying options pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionTips,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Shop Now", Position: types.CTAAfterContent},
	},
	{
		Name:        "ecommerce_comparison",
		Vertical:    types.VerticalEcommerce,
		Intent:      types.IntentComparison,
		Description: "Product or store comparison guide",
		H1Template:  "{keyword}: Which Option Is Worth Your Money?",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionComparisonTable, // head-to-head product/store matrix
			types.SectionContentBlock,    // detailed feature-by-feature breakdown
			types.SectionScorecard,       // overall value scorecard
			types.SectionContentBlock,    // real-world testing & durability
			types.SectionProsCons,        // side-by-side pros & cons
			types.SectionContentBlock,    // who should buy what
			types.SectionChecklist,       // buyer's evaluation checklist
			types.SectionCalculator,      // cost-per-use value calculator
			types.SectionTips,            // smart shopping tips
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionComparisonTable,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Compare Prices", Position: types.CTAAfterContent},
	},
	{
		Name:        "ecommerce_pricing",
		Vertical:    types.VerticalEcommerce,
		Intent:      types.IntentPricing,
		Description: "Product pricing analysis, deals, and value assessment",
		H1Template:  "{keyword}: Pricing, Deals & What You Actually Pay",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionPricingTable,    // current pricing tiers
			types.SectionContentBlock,    // price history & trends
			types.SectionCalculator,      // total cost of ownership calculator
			types.SectionComparisonTable, // competitor pricing
			types.SectionContentBlock,    // where to find deals
			types.SectionChecklist,       // deal-hunting checklist
			types.SectionTips,            // money-saving strategies
			types.SectionContentBlock,    // is it worth the price?
			types.SectionProsCons,        // value proposition analysis
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionPricingTable,
			types.SectionTips, types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Check Current Prices", Position: types.CTABoth},
	},
	{
		Name:        "ecommerce_validation",
		Vertical:    types.VerticalEcommerce,
		Intent:      types.IntentValidation,
		Description: "Product or store legitimacy and quality review",
		H1Template:  "{keyword}: An Honest Assessment",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // what it is & how it works
			types.SectionScorecard,       // quality scorecard
			types.SectionContentBlock,    // hands-on experience & quality
			types.SectionComparisonTable, // vs alternatives
			types.SectionContentBlock,    // customer sentiment analysis
			types.SectionProsCons,        // comprehensive pros & cons
			types.SectionChecklist,       // red flag checklist
			types.SectionTips,            // smart buying tips
			types.SectionContentBlock,    // final verdict
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionContentBlock,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Visit {brand}", Position: types.CTAAfterContent},
	},

	// --- d2c ---
	{
		Name:        "d2c_comparison",
		Vertical:    types.VerticalD2C,
		Intent:      types.IntentComparison,
		Description: "D2C brand comparison — product vs product",
		H1Template:  "{keyword}: A Side-by-Side Brand Comparison",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionComparisonTable, // brand/product matrix
			types.SectionContentBlock,    // brand story & values comparison
			types.SectionScorecard,       // brand evaluation scorecard
			types.SectionContentBlock,    // product quality & materials
			types.SectionProsCons,        // brand pros & cons
			types.SectionContentBlock,    // shipping, returns & customer experience
			types.SectionChecklist,       // brand evaluation checklist
			types.SectionCalculator,      // subscription value calculator
			types.SectionTips,            // choosing the right D2C brand
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionComparisonTable,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Compare Options", Position: types.CTAAfterContent},
	},
	{
		Name:        "d2c_validation",
		Vertical:    types.VerticalD2C,
		Intent:      types.IntentValidation,
		Description: "D2C brand review — is it legit and worth it?",
		H1Template:  "{brand}: Is This D2C Brand Worth the Hype?",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // brand overview & mission
			types.SectionScorecard,       // brand quality scorecard
			types.SectionContentBlock,    // product quality deep dive
			types.SectionComparisonTable, // vs traditional alternatives
			types.SectionContentBlock,    // ordering & unboxing experience
			types.SectionProsCons,        // honest pros & cons
			types.SectionContentBlock,    // customer service & returns
			types.SectionChecklist,       // "should you try it?" checklist
			types.SectionTips,            // getting the most value
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionContentBlock,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Visit {brand}", Position: types.CTAAfterContent},
	},
	{
		Name:        "d2c_pricing",
		Vertical:    types.VerticalD2C,
		Intent:      types.IntentPricing,
		Description: "D2C brand pricing, subscriptions & value breakdown",
		H1Template:  "{keyword}: Pricing, Subscriptions & Real Cost Breakdown",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionPricingTable,    // product/subscription pricing
			types.SectionContentBlock,    // one-time vs subscription value
			types.SectionCalculator,      // subscription savings calculator
			types.SectionContentBlock,    // hidden costs (shipping, returns, add-ons)
			types.SectionComparisonTable, // vs retail/competitor pricing
			types.SectionScorecard,       // value for money scorecard
			types.SectionContentBlock,    // best deals & discount strategies
			types.SectionChecklist,       // subscription management checklist
			types.SectionTips,            // how to save on D2C
			types.SectionProsCons,        // pricing model pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionPricingTable,
			types.SectionTips, types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "View {brand} Pricing", Position: types.CTABoth},
	},
	{
		Name:        "d2c_transactional",
		Vertical:    types.VerticalD2C,
		Intent:      types.IntentTransactional,
		Description: "D2C brand buying guide — ready to purchase",
		H1Template:  "{keyword}: Your Complete Buying Guide",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // what you're getting
			types.SectionScorecard,       // product quality scorecard
			types.SectionComparisonTable, // product range overview
			types.SectionContentBlock,    // customization & options
			types.SectionCalculator,      // bundle value calculator
			types.SectionSteps,           // how to order step by step
			types.SectionChecklist,       // pre-order checklist
			types.SectionTips,            // first-order tips & discounts
			types.SectionProsCons,        // buying pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionSteps,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Shop {brand}", Position: types.CTABoth},
	},

	// --- subscription ---
	{
		Name:        "subscription_comparison",
		Vertical:    types.VerticalSubscription,
		Intent:      types.IntentComparison,
		Description: "Subscription service comparison",
		H1Template:  "{keyword}: Which Subscription Is Actually Worth It?",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionComparisonTable, // service-by-service matrix
			types.SectionContentBlock,    // what each service includes
			types.SectionScorecard,       // value scorecard
			types.SectionContentBlock,    // content/product library analysis
			types.SectionProsCons,        // platform pros & cons
			types.SectionContentBlock,    // sharing, family plans & multi-device
			types.SectionCalculator,      // annual cost comparison calculator
			types.SectionChecklist,       // subscription evaluation checklist
			types.SectionTips,            // subscription optimization tips
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionComparisonTable,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Compare Plans", Position: types.CTAAfterContent},
	},
	{
		Name:        "subscription_pricing",
		Vertical:    types.VerticalSubscription,
		Intent:      types.IntentPricing,
		Description: "Subscription pricing analysis and plan comparison",
		H1Template:  "{keyword}: Plans, Pricing & What Each Tier Gets You",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionPricingTable,    // tier breakdown
			types.SectionContentBlock,    // plan-by-plan deep dive
			types.SectionCalculator,      // monthly vs annual savings calculator
			types.SectionContentBlock,    // what's actually included at each tier
			types.SectionComparisonTable, // vs competitors pricing
			types.SectionScorecard,       // value scorecard
			types.SectionContentBlock,    // upgrade & downgrade strategies
			types.SectionChecklist,       // plan selection checklist
			types.SectionTips,            // saving money on subscriptions
			types.SectionProsCons,        // pricing model pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionPricingTable,
			types.SectionTips, types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "View Plans", Position: types.CTABoth},
	},
	{
		Name:        "subscription_validation",
		Vertical:    types.VerticalSubscription,
		Intent:      types.IntentValidation,
		Description: "Subscription service review — is it worth subscribing?",
		H1Template:  "{brand}: Is This Subscription Worth Your Money?",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // what you get
			types.SectionScorecard,       // service quality scorecard
			types.SectionContentBlock,    // content/product quality deep dive
			types.SectionComparisonTable, // vs alternatives
			types.SectionContentBlock,    // user experience & app quality
			types.SectionProsCons,        // honest assessment
			types.SectionContentBlock,    // cancellation, pausing & flexibility
			types.SectionChecklist,       // "is it right for you?" checklist
			types.SectionTips,            // maximizing your subscription
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionContentBlock,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Try {brand}", Position: types.CTAAfterContent},
	},
	{
		Name:        "subscription_transactional",
		Vertical:    types.VerticalSubscription,
		Intent:      types.IntentTransactional,
		Description: "Subscription sign-up guide",
		H1Template:  "{keyword}: How to Get Started & What to Expect",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock, // what you're signing up for
			types.SectionPricingTable, // plan options
			types.SectionSteps,        // sign-up walkthrough
			types.SectionContentBlock, // first-month experience
			types.SectionScorecard,    // service scorecard
			types.SectionCalculator,   // subscription cost calculator
			types.SectionChecklist,    // getting started checklist
			types.SectionTips,         // first-timer tips
			types.SectionProsCons,     // joining pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionSteps,
			types.SectionPricingTable, types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Start {brand} Free Trial", Position: types.CTABoth},
	},

	// --- finance ---
	{
		Name:        "finance_eligibility",
		Vertical:    types.VerticalFinance,
		Intent:      types.IntentValidation,
		Description: "Eligibility / risk assessment informational page",
		H1Template:  "{keyword}: Understanding Requirements & Eligibility",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // overview
			types.SectionScorecard,       // eligibility scorecard
			types.SectionSteps,           // eligibility steps
			types.SectionContentBlock,    // factors that matter
			types.SectionChecklist,       // documentation checklist
			types.SectionCalculator,      // estimate calculator
			types.SectionComparisonTable, // options comparison
			types.SectionTips,            // improving your chances
			types.SectionContentBlock,    // common mistakes
			types.SectionProsCons,        // option pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionSteps,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Check Eligibility", Position: types.CTAAfterContent},
	},
	{
		Name:        "finance_comparison",
		Vertical:    types.VerticalFinance,
		Intent:      types.IntentComparison,
		Description: "Financial product comparison (cards, loans, accounts)",
		H1Template:  "{keyword}: A Comprehensive Comparison",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionComparisonTable, // product comparison matrix
			types.SectionContentBlock,    // what matters when comparing
			types.SectionScorecard,       // product evaluation scorecard
			types.SectionContentBlock,    // fee structures explained
			types.SectionCalculator,      // interest/cost calculator
			types.SectionContentBlock,    // terms & conditions breakdown
			types.SectionProsCons,        // product pros & cons
			types.SectionChecklist,       // comparison checklist
			types.SectionTips,            // choosing the right product
			types.SectionContentBlock,    // application strategy
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionComparisonTable,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Compare Options", Position: types.CTAAfterContent},
	},
	{
		Name:        "finance_pricing",
		Vertical:    types.VerticalFinance,
		Intent:      types.IntentPricing,
		Description: "Financial product rates, fees & cost analysis",
		H1Template:  "{keyword}: Rates, Fees & True Cost Analysis",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionPricingTable,    // rate/fee table
			types.SectionContentBlock,    // understanding the fee structure
			types.SectionCalculator,      // total cost calculator
			types.SectionContentBlock,    // hidden fees & fine print
			types.SectionComparisonTable, // vs competitor rates
			types.SectionScorecard,       // value scorecard
			types.SectionContentBlock,    // rate negotiation strategies
			types.SectionChecklist,       // fee audit checklist
			types.SectionTips,            // minimizing costs
			types.SectionProsCons,        // fee structure pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionPricingTable,
			types.SectionTips, types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Check Current Rates", Position: types.CTABoth},
	},
	{
		Name:        "finance_transactional",
		Vertical:    types.VerticalFinance,
		Intent:      types.IntentTransactional,
		Description: "Financial product application/sign-up guide",
		H1Template:  "{keyword}: How to Apply & What to Expect",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // product overview
			types.SectionScorecard,       // product scorecard
			types.SectionSteps,           // application walkthrough
			types.SectionContentBlock,    // documentation requirements
			types.SectionChecklist,       // application readiness checklist
			types.SectionCalculator,      // affordability/eligibility calculator
			types.SectionComparisonTable, // alternative options
			types.SectionTips,            // application success tips
			types.SectionContentBlock,    // after approval — what happens next
			types.SectionProsCons,        // product pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionSteps,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Apply Now", Position: types.CTABoth},
	},

	// --- health ---
	{
		Name:        "health_informational",
		Vertical:    types.VerticalHealth,
		Intent:      types.IntentInformational,
		Description: "Health/wellness educational and informational guide",
		H1Template:  "{keyword}: What You Need to Know",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // comprehensive overview
			types.SectionScorecard,       // topic assessment scorecard
			types.SectionContentBlock,    // science & evidence review
			types.SectionComparisonTable, // options/methods comparison
			types.SectionContentBlock,    // how to get started
			types.SectionChecklist,       // health action checklist
			types.SectionTips,            // practical wellness tips
			types.SectionContentBlock,    // when to seek professional help
			types.SectionProsCons,        // approach pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionContentBlock,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Learn More", Position: types.CTAAfterContent},
	},
	{
		Name:        "health_comparison",
		Vertical:    types.VerticalHealth,
		Intent:      types.IntentComparison,
		Description: "Health product or service comparison",
		H1Template:  "{keyword}: Comparing Your Options",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionComparisonTable, // product/service comparison
			types.SectionContentBlock,    // what the science says
			types.SectionScorecard,       // product evaluation scorecard
			types.SectionContentBlock,    // ingredient/method analysis
			types.SectionProsCons,        // each option's pros & cons
			types.SectionContentBlock,    // real-world effectiveness
			types.SectionChecklist,       // quality evaluation checklist
			types.SectionCalculator,      // cost-per-day/dose calculator
			types.SectionTips,            // choosing the right option
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionComparisonTable,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Compare Products", Position: types.CTAAfterContent},
	},
	{
		Name:        "health_validation",
		Vertical:    types.VerticalHealth,
		Intent:      types.IntentValidation,
		Description: "Health product/supplement review — is it safe and effective?",
		H1Template:  "{keyword}: Safety, Effectiveness & What to Expect",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // what it is & how it works
			types.SectionScorecard,       // safety & efficacy scorecard
			types.SectionContentBlock,    // ingredient/evidence analysis
			types.SectionComparisonTable, // vs alternatives
			types.SectionContentBlock,    // who should (and shouldn't) use it
			types.SectionProsCons,        // honest pros & cons
			types.SectionChecklist,       // safety checklist before trying
			types.SectionContentBlock,    // dosage, timing & best practices
			types.SectionTips,            // getting results safely
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionContentBlock,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Visit {brand}", Position: types.CTAAfterContent},
	},

	// --- generic / other ---
	{
		Name:        "generic_comparison",
		Vertical:    types.VerticalOther,
		Intent:      types.IntentComparison,
		Description: "Generic comparison page for any vertical",
		H1Template:  "{keyword}: A Detailed Comparison",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionComparisonTable,
			types.SectionContentBlock, // detailed analysis
			types.SectionScorecard,    // comparison scorecard
			types.SectionContentBlock, // use case recommendations
			types.SectionProsCons,     // pros & cons
			types.SectionChecklist,    // evaluation checklist
			types.SectionTips,
			types.SectionContentBlock, // expert verdict
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionComparisonTable,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Learn More", Position: types.CTAAfterContent},
	},
	{
		Name:        "generic_informational",
		Vertical:    types.VerticalOther,
		Intent:      types.IntentInformational,
		Description: "Generic informational / educational page",
		H1Template:  "{keyword}: What You Need to Know",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock, // comprehensive overview
			types.SectionContentBlock, // deep dive analysis
			types.SectionScorecard,    // topic scorecard
			types.SectionChecklist,    // action items
			types.SectionTips,
			types.SectionContentBlock, // expert perspective
			types.SectionProsCons,     // advantages & limitations
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionContentBlock,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Get Started", Position: types.CTAAfterContent},
	},
	{
		Name:        "generic_validation",
		Vertical:    types.VerticalOther,
		Intent:      types.IntentValidation,
		Description: "Generic review / validation page for any vertical",
		H1Template:  "{keyword}: An In-Depth Review",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // what it is
			types.SectionScorecard,       // evaluation scorecard
			types.SectionContentBlock,    // features & capabilities
			types.SectionComparisonTable, // vs alternatives
			types.SectionContentBlock,    // real-world usage
			types.SectionProsCons,        // pros & cons
			types.SectionChecklist,       // evaluation checklist
			types.SectionTips,            // getting the most value
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionContentBlock,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Visit {brand}", Position: types.CTAAfterContent},
	},
	{
		Name:        "generic_pricing",
		Vertical:    types.VerticalOther,
		Intent:      types.IntentPricing,
		Description: "Generic pricing analysis for any vertical",
		H1Template:  "{keyword}: Pricing, Plans & Value Analysis",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionPricingTable,
			types.SectionContentBlock,    // pricing deep dive
			types.SectionCalculator,      // cost calculator
			types.SectionContentBlock,    // hidden costs
			types.SectionComparisonTable, // competitor pricing
			types.SectionScorecard,       // value scorecard
			types.SectionTips,            // saving money
			types.SectionContentBlock,    // who each option is for
			types.SectionProsCons,        // pricing pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionPricingTable,
			types.SectionTips, types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Check Prices", Position: types.CTABoth},
	},
	{
		Name:        "generic_transactional",
		Vertical:    types.VerticalOther,
		Intent:      types.IntentTransactional,
		Description: "Generic transactional / buying guide for any vertical",
		H1Template:  "{keyword}: Your Complete Guide to Getting Started",
		SectionOrder: []types.SectionType{
			types.SectionHero,
			types.SectionQuickAnswer,
			types.SectionContentBlock,    // overview of what you're getting
			types.SectionScorecard,       // product/service scorecard
			types.SectionComparisonTable, // options at a glance
			types.SectionSteps,           // how to get started
			types.SectionContentBlock,    // what to expect
			types.SectionCalculator,      // cost/value calculator
			types.SectionChecklist,       // readiness checklist
			types.SectionTips,            // first-timer tips
			types.SectionProsCons,        // decision pros & cons
			types.SectionFAQ,
			types.SectionCTA,
			types.SectionDisclosure,
		},
		RequiredSections: []types.SectionType{
			types.SectionHero, types.SectionQuickAnswer, types.SectionSteps,
			types.SectionFAQ, types.SectionDisclosure,
		},
		CTA: types.CTATemplate{Text: "Get Started", Position: types.CTABoth},
	},
}
