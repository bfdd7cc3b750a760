// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package instruction

import "github.com/halcyon-media/lander-engine/pkg/types"

// entry is one instruction. text always renders; grounded is appended
// when verified brand data is in the prompt, ungrounded when it is not.
// Text may contain {keyword}, {brand}, {BRAND}, {origin}, {destination}
// and {destinationUrl} placeholders.
type entry struct {
	text       string
	grounded   string
	ungrounded string
}

// defaultEntry covers section types with no table row at all.
var defaultEntry = entry{
	text: `General informational section about {keyword}. At least 400 words of expert-level, useful content with ### subheadings.`,
}

// sectionTable holds instructions for section types that read the same
// in every blueprint.
var sectionTable = map[types.SectionType]entry{
	types.SectionHero: {
		text: `Hero banner with a compelling headline and subheadline that directly addresses the user's search for "{keyword}". Include ctaText and ctaUrl="{destinationUrl}". The subheadline should summarize the key value proposition in 1-2 sentences.`,
	},
	types.SectionPricingTable: {
		text:       `Pricing breakdown table.`,
		grounded:   `Use the VERIFIED pricing data to create an accurate table. Include plan names, prices, key features per plan, and who each plan is best for. At least 3 rows.`,
		ungrounded: `Use publicly available pricing tiers for {brand}. Include plan names, prices, key features per plan, and who each plan is best for. At least 3 rows.`,
	},
	types.SectionSteps: {
		text: `Step-by-step guide as items array: [{"step": "1", "title": "Step Title", "detail": "3-5 sentence explanation of what to do, why it matters, and common mistakes to avoid at this step"}]. Include 6-8 clear, sequential steps. Each step should build on the previous one. Include pro tips within steps where relevant.`,
	},
	types.SectionFAQ: {
		text: `7-8 FAQ items as items array: [{"question": "Specific question about {keyword}", "answer": "5-8 sentence detailed answer that fully resolves the question"}]. Questions MUST address real user concerns: pricing/cost questions, feature comparisons, "how to" questions, common problems, alternatives, safety/trust concerns, and edge cases. Every answer should be so thorough that the reader doesn't need to search further.`,
	},
	types.SectionCalculator: {
		text: `Interactive savings/budget calculator. Provide a config object with type ("flight", "subscription", or "general"), a reasonable baselineAmount, savingsPercentMin and savingsPercentMax based on realistic data, and 3 contextual tips triggered at different budget thresholds. The calculator lets users input their own numbers and see estimated savings.`,
	},
	types.SectionChecklist: {
		text: `Interactive preparation/evaluation checklist with 8-12 items. Each item needs a "task" (specific action), "detail" (1-2 sentence explanation of why and how), and "priority" ("high", "medium", or "low"). Users can check items off interactively. Cover the most important preparation steps for "{keyword}" — things users should verify, compare, or prepare before making a decision.`,
	},
	types.SectionScorecard: {
		text:       `Visual evaluation scorecard for "{keyword}". Include overallScore (1-10), overallLabel (brief verdict), 5-7 categories with name, score (1-10), maxScore (10), and detail (1 sentence explaining the score). Include a verdict paragraph (3-4 sentences) with your editorial assessment. Be honest — not everything should be 9/10. Show real differentiation between categories.`,
		grounded:   `Use VERIFIED data to inform scores.`,
		ungrounded: `Base scores on publicly available information and clearly qualify.`,
	},
	types.SectionProsCons: {
		text:     `Comprehensive pros & cons analysis. Include 5-7 pros and 4-6 cons, each with "text" (the advantage/limitation), optional "detail" (extra context), and "weight" ("major" or "minor"). Major items should be genuinely significant differentiators. Include a "bottomLine" paragraph (3-4 sentences) with your overall assessment. Be balanced and honest — list real limitations, not token negatives.`,
		grounded: `Use VERIFIED pros/cons data.`,
	},
	types.SectionCTA: {
		text: `Call-to-action section. Include heading (compelling but honest), content (2-3 sentences summarizing key value), ctaText, and ctaUrl="{destinationUrl}". The CTA should feel like a natural conclusion to the content, not a hard sell.`,
	},
	types.SectionDisclosure: {
		text: `Affiliate disclosure. Content must state this page may contain affiliate links. Include specifics about editorial independence.`,
	},
}

// quickAnswerDefault serves blueprints without a bespoke quick answer.
var quickAnswerDefault = entry{
	text: `Quick answer box with 4-6 key highlights (label + value pairs). Give the user an instant overview of the most important facts about "{keyword}".`,
}

var quickAnswerTable = map[string]entry{
	"travel_route": {
		text: `Quick answer box with 4-6 key highlights as label/value pairs. Include: typical flight duration, price range, number of airlines on route, best booking window, popular airports. Give the user an instant snapshot.`,
	},
	"travel_pricing": {
		text: `Quick answer with 4-6 highlights: average price range, cheapest month, peak season months, advance booking discount estimate, available fare classes.`,
	},
	"travel_destination": {
		text: `Quick answer with 4-6 highlights: best time to visit, average flight cost, visa requirements (if applicable), local currency, typical trip duration.`,
	},
	"saas_pricing": {
		text:     `Quick answer with 4-6 highlights: starting price, number of plans, free tier availability, enterprise option, billing options.`,
		grounded: `Use the VERIFIED pricing data.`,
	},
	"saas_comparison": {
		text: `Quick answer with 4-6 highlights comparing the key differences: pricing ranges, target audience, standout feature of each, integration ecosystems.`,
	},
	"saas_validation": {
		text:     `Quick answer with 4-6 highlights: what {brand} does, who it's for, starting price, standout features, notable limitation.`,
		grounded: `Use VERIFIED data.`,
	},
	"ecommerce_comparison": {
		text: `Quick answer with 4-6 highlights comparing the key products/options: price ranges, top-rated features, value-for-money pick, and who each option suits best.`,
	},
	"ecommerce_pricing": {
		text: `Quick answer with 4-6 highlights: price range, typical sales/discount frequency, best time to buy, price match availability, shipping costs.`,
	},
	"ecommerce_validation": {
		text:     `Quick answer with 4-6 highlights: product quality rating, shipping speed, return policy, customer satisfaction summary, and value assessment.`,
		grounded: `Use VERIFIED data.`,
	},
	"d2c_comparison": {
		text: `Quick answer with 4-6 highlights comparing the D2C brands: price ranges, product categories, shipping/returns policies, and standout differentiator for each.`,
	},
	"d2c_validation": {
		text:     `Quick answer with 4-6 highlights: brand founding story, product range, price range, shipping speed, return window, and overall customer sentiment.`,
		grounded: `Use VERIFIED data.`,
	},
	"d2c_pricing": {
		text:     `Quick answer with 4-6 highlights: starting price, subscription discount, bundle savings, shipping threshold, referral/first-order discounts, annual spend estimate.`,
		grounded: `Use VERIFIED pricing data.`,
	},
	"d2c_transactional": {
		text: `Quick answer with 4-6 highlights: what you'll receive, starting price, delivery timeframe, satisfaction guarantee, and any first-order perks.`,
	},
	"subscription_comparison": {
		text: `Quick answer with 4-6 highlights comparing subscription services: monthly cost range, content/product library size, family plan availability, free trial length.`,
	},
	"subscription_pricing": {
		text:     `Quick answer with 4-6 highlights: plan tiers and prices, annual vs monthly savings, free trial availability, cancellation policy, student/family discounts.`,
		grounded: `Use VERIFIED pricing data.`,
	},
	"subscription_validation": {
		text:     `Quick answer with 4-6 highlights: what {brand} offers, starting price, free trial length, cancellation flexibility, content/product quality rating.`,
		grounded: `Use VERIFIED data.`,
	},
	"subscription_transactional": {
		text: `Quick answer with 4-6 highlights: sign-up time, free trial details, first-month price, payment methods, and what you get immediately after subscribing.`,
	},
	"finance_comparison": {
		text: `Quick answer with 4-6 highlights comparing financial products: APR/rate ranges, fee structures, minimum requirements, approval timeframes, and standout benefits of each.`,
	},
	"finance_pricing": {
		text: `Quick answer with 4-6 highlights: rate range, annual fee, introductory offers, penalty fees, and how rates compare to industry average.`,
	},
	"finance_transactional": {
		text: `Quick answer with 4-6 highlights: application time, approval speed, minimum requirements, documents needed, and sign-up bonus/introductory offer.`,
	},
	"health_informational": {
		text: `Quick answer with 4-6 highlights: what it is, scientific evidence level, who benefits most, typical cost range, time to see results, and safety considerations.`,
	},
	"health_comparison": {
		text: `Quick answer with 4-6 highlights comparing the health products/options: effectiveness ratings, price per serving/dose, ingredient quality, third-party testing, and target user.`,
	},
	"health_validation": {
		text:     `Quick answer with 4-6 highlights: product type, key active ingredients, scientific evidence level, safety rating, price range, and recommended usage.`,
		grounded: `Use VERIFIED data.`,
	},
}

// contentBlockDefault serves blueprints without bespoke block variants.
var contentBlockDefault = entry{
	text: `In-depth analysis section (400-700 words, 3+ subsections with ### headings). Provide genuinely useful, expert-level content about "{keyword}". Include specific details, practical advice, concrete examples, and information the reader can immediately use. Every subsection should teach something new.`,
}

// contentBlockTable maps a blueprint to its ordered content_block
// variants. The Nth content_block in the blueprint's section order gets
// the Nth variant; occurrences past the end reuse the final variant.
var contentBlockTable = map[string][]entry{
	"travel_route": {
		{text: `ROUTE OVERVIEW (400-700 words, 3+ subsections with ### headings): Comprehensive coverage of travel options between {origin} and {destination}. Cover: airlines operating this route (with fleet types), direct vs connecting flight options with journey times, airport-specific tips (terminals, lounges, transit connections), ground transport alternatives (trains, buses, driving), and seasonal route changes. Include specific airline names and flight numbers where possible.`},
		{text: `BOOKING STRATEGY DEEP DIVE (400-700 words, 3+ subsections): Advanced booking tactics for this route. Cover: optimal advance purchase windows by season, fare class differences and what you get, error fare monitoring techniques, airline loyalty program sweet spots, credit card travel portals, and bundling strategies. Give specific tool names and step-by-step approaches.`},
		{text: `SEASONAL ANALYSIS (400-700 words, 3+ subsections): Month-by-month analysis of this route. Cover: peak vs off-peak pricing with approximate ranges, holiday surcharge periods, shoulder season opportunities, weather patterns at both ends, day-of-week pricing differences, and how school holidays affect demand. Include a general pricing calendar overview.`},
		{text: `AIRPORT & TRANSIT GUIDE (400-700 words, 3+ subsections): Detailed airport guide for both ends of this route. Cover: terminal maps and key facilities, immigration/customs tips, transport from airport to city center (costs, times, options), lounge access options, duty-free highlights, layover tips if connecting, and mobile apps that help navigate these airports.`},
	},
	"travel_destination": {
		{text: `DESTINATION OVERVIEW (400-700 words, 3+ subsections with ### headings): Comprehensive overview of {destination} — what makes it appealing, key neighborhoods/areas with descriptions, general cost of living for tourists (meals, transport, attractions), safety considerations with specific advice, cultural norms, language tips, and overall vibe. Write as a knowledgeable local would brief a first-time visitor.`},
		{text: `HOW TO GET THERE (400-700 words, 3+ subsections): Cover all ways to reach {destination} — flights (which airports, airlines, typical costs), trains (routes, booking platforms), buses, and driving options. Include comparison of travel times and costs. Mention visa/entry requirements for major nationalities. Cover airport transfer options to city center.`},
		{text: `ACCOMMODATION & TRANSPORT (400-700 words, 3+ subsections): Detailed accommodation guide covering budget hostels/guesthouses, mid-range hotels, luxury options, and alternative stays (Airbnb, boutique). Cover neighborhoods and which are best for different traveler types. Then cover local transport: public transit systems, ride-hailing, bike rentals, walking routes, and approximate costs for each.`},
		{text: `BEST TIME TO VISIT (400-700 words, 3+ subsections): Month-by-month breakdown of weather, tourist crowds, and pricing. Identify shoulder-season sweet spots. Cover major events/festivals, their dates, and how they affect availability and pricing. Include what to pack for each season and which attractions are seasonal.`},
	},
	"travel_pricing": {
		{text: `PRICING FACTORS EXPLAINED (400-700 words, 3+ subsections with ### headings): Detailed analysis of what drives pricing for "{keyword}". Cover: demand-supply dynamics, fuel surcharge mechanics, route competition effects, booking class hierarchy (Y/B/M/H/Q fare classes), time-of-purchase pricing algorithms, day-of-week patterns, and how these factors compound. Include specific examples showing how the same route can vary 300%+ in price.`},
		{text: `SEASONAL PRICING ANALYSIS (400-700 words, 3+ subsections): Month-by-month pricing trends for "{keyword}". Cover: cheapest months with approximate price ranges, peak season dates and premium percentages, school holiday impacts, conference/event season effects, holiday blackout dates, and how weather patterns affect pricing. Provide a general seasonal pricing calendar.`},
		{text: `ADVANCED BOOKING STRATEGIES (400-700 words, 3+ subsections): Expert-level strategies for getting the most favorable prices on "{keyword}". Cover: the 21-day advance purchase sweet spot, hidden city ticketing (and its risks), fuel dump techniques, positioning flights, airline mistake fares, credit card travel portals, points/miles valuation, and cashback stacking. Include specific tool names for each strategy.`},
	},
	"saas_pricing": {
		{
			text:     `PLAN-BY-PLAN DEEP DIVE (400-700 words, 3+ subsections with ### headings): Go beyond the table — explain the practical differences between each pricing tier. What features actually matter at each level? Where are the hidden limitations (user caps, API rate limits, storage quotas, feature gating)? What's the real cost including add-ons? Which plan offers the most value per dollar? Include upgrade triggers.`,
			grounded: `Reference the VERIFIED pricing data.`,
		},
		{text: `HIDDEN COSTS & GOTCHAS (400-700 words, 3+ subsections): What the pricing page doesn't tell you. Cover: overage charges, implementation/onboarding fees, data migration costs, training requirements, add-on pricing for premium features, API/integration costs, per-seat vs per-user distinctions, and contract lock-in implications. Include negotiation tips for enterprise buyers.`},
		{text: `WHO EACH PLAN IS FOR (400-700 words, 3+ subsections): Match each pricing tier to a specific user profile with detailed scenarios. Cover: solo freelancers, growing startups (5-20 employees), mid-market teams (20-200), and enterprise (200+). For each, describe typical usage patterns, which features they actually need, and the break-even point for upgrading. Include real-world workflow examples.`},
	},
	"saas_comparison": {
		{
			text:     `DETAILED STRENGTHS & WEAKNESSES (400-700 words, 3+ subsections with ### headings): For each product being compared, detail their specific strengths and where they fall short. Go beyond surface-level features — discuss UX quality and learning curve, customer support reputation (response times, channels), API/integration ecosystem maturity, documentation quality, and real-world reliability (uptime, performance).`,
			grounded: `Reference the VERIFIED pros/cons data.`,
		},
		{text: `REAL-WORLD USE CASE ANALYSIS (400-700 words, 3+ subsections): For 5+ specific user scenarios, recommend which product is the stronger choice and explain why with detailed reasoning. Cover: solo creators, small teams (5-15), mid-market companies, enterprise orgs, budget-constrained startups, and power users with advanced needs. Include specific workflow examples for each.`},
		{text: `MIGRATION & SWITCHING COSTS (400-700 words, 3+ subsections): Practical analysis of what it takes to switch between these products. Cover: data export/import capabilities, API migration effort, team retraining time, contract/billing transition, integration rewiring, and potential downtime. Include tips for smooth migration and red flags to watch for.`},
		{text: `EXPERT RECOMMENDATIONS BY USE CASE (400-700 words, 3+ subsections): Definitive recommendations for different buyer personas. For each persona, explain which product wins and why, what they'll love about it, what they'll miss, and how to get the most value. End with a general recommendation matrix.`},
	},
	"saas_validation": {
		{
			text:     `WHAT {BRAND} DOES & HOW IT WORKS (400-700 words, 3+ subsections with ### headings): Detailed explanation of {brand}'s core product, its primary workflow, and how users actually interact with it day-to-day. Cover the onboarding experience, main dashboard, key capabilities, and the specific problems it solves. Write for someone evaluating {brand} who needs to understand it before committing.`,
			grounded: `Reference VERIFIED features data.`,
		},
		{
			text:     `KEY FEATURES DEEP DIVE (400-700 words, 3+ subsections): Pick the 5-6 most important features of {brand} and explain each in depth — what it does, the specific problem it solves, how it compares to how competitors handle the same thing, and who benefits most from it. Include practical usage examples.`,
			grounded: `Reference VERIFIED features data.`,
		},
		{text: `REAL USER SCENARIOS (400-700 words, 3+ subsections): Walk through 3-4 realistic user scenarios showing how {brand} fits into actual workflows. Example: a marketing team using it for campaign management, a developer using the API, a manager tracking team performance. For each scenario, explain the setup, daily workflow, and outcomes.`},
		{
			text:     `WHO IT'S FOR (AND WHO IT ISN'T) (400-700 words, 3+ subsections): Honest, detailed assessment of {brand}'s ideal customer profile. Cover: company size sweet spots, technical skill requirements, budget expectations by tier, integration needs, use cases where {brand} excels, and 3+ scenarios where users should look elsewhere (with alternative recommendations).`,
			grounded: `Use the VERIFIED pros/cons and competitor data.`,
		},
	},
	"ecommerce_buying_guide": {
		{text: `WHAT TO LOOK FOR (400-700 words, 3+ subsections with ### headings): Detailed buying criteria for "{keyword}". Cover the 6-8 most important evaluation factors, explain why each matters with specific examples, describe what "good" vs "bad" looks like for each criterion, and include realistic price range expectations for each quality tier.`},
		{text: `BUDGET BREAKDOWN BY TIER (400-700 words, 3+ subsections): Detailed analysis of what you get at each price point for "{keyword}". Cover budget tier (features, compromises, who it suits), mid-range tier (sweet spot analysis, value proposition), and premium tier (when the extra cost is justified). Include specific brand/product examples where possible.`},
	},
	"ecommerce_comparison": {
		{text: `DETAILED FEATURE-BY-FEATURE BREAKDOWN (400-700 words, 3+ subsections with ### headings): Go beyond the comparison table. For each product/option being compared, explain build quality and materials, key performance metrics, user experience differences, durability expectations, and warranty coverage. Include hands-on style observations that help buyers visualize the difference.`},
		{text: `REAL-WORLD TESTING & DURABILITY (400-700 words, 3+ subsections): Discuss long-term ownership experience, common wear patterns, maintenance requirements, and how each option holds up over time. Cover common complaints, known issues, and whether the product matches its marketing promises. Include care tips.`},
		{text: `WHO SHOULD BUY WHAT (400-700 words, 3+ subsections): Match each product/option to specific buyer personas. Cover: budget-conscious shoppers, quality-focused buyers, gift-givers, professionals vs hobbyists, and first-time vs upgrading buyers. For each, explain the clear winner and why.`},
	},
	"ecommerce_pricing": {
		{text: `PRICE HISTORY & TRENDS (400-700 words, 3+ subsections with ### headings): Historical pricing analysis for "{keyword}". Cover: typical retail price range, seasonal sales patterns (Black Friday, Prime Day, etc.), price fluctuation frequency, coupon/promo availability, and whether prices are trending up or down. Include tips for price tracking tools like CamelCamelCamel, Honey, and price alert services.`},
		{text: `WHERE TO FIND THE BEST DEALS (400-700 words, 3+ subsections): Comprehensive deal-finding guide. Cover: direct brand site vs retailers (Amazon, Walmart, Target), outlet/refurbished options, cashback platforms (Rakuten, TopCashback), browser extensions, email newsletter discounts, student/military discounts, and timing your purchase around sales cycles.`},
		{text: `IS IT WORTH THE PRICE? (400-700 words, 3+ subsections): Value analysis of "{keyword}" at different price points. Cover: cost-per-use calculation, durability vs price correlation, when premium is justified, the "sweet spot" price tier, and total cost of ownership including accessories, maintenance, and replacements.`},
	},
	"ecommerce_validation": {
		{
			text:       `WHAT IT IS & HOW IT WORKS (400-700 words, 3+ subsections with ### headings): Comprehensive product/store overview. What exactly you're getting, how the product functions, what makes it different from alternatives, and the brand's reputation and track record.`,
			grounded:   `Reference VERIFIED data.`,
			ungrounded: `Include publicly available information about the brand's history and market position.`,
		},
		{text: `HANDS-ON EXPERIENCE & QUALITY (400-700 words, 3+ subsections): Detailed quality assessment covering materials, craftsmanship, packaging, first impressions, setup/assembly (if applicable), and initial usage experience. Discuss how it compares to expectations set by marketing. Address common quality concerns raised in customer reviews.`},
		{text: `CUSTOMER SENTIMENT ANALYSIS (400-700 words, 3+ subsections): What real customers are saying — aggregate patterns from reviews. Cover: most praised aspects, most criticized elements, common issues and their frequency, customer service responsiveness, return/exchange experiences, and how sentiment has changed over time.`},
		{text: `FINAL VERDICT (400-700 words, 3+ subsections): Definitive editorial assessment. Who should buy, who should skip, the ideal use case, best alternatives for those who decide against it, and a clear recommendation with honest qualification.`},
	},
	"d2c_comparison": {
		{text: `BRAND STORY & VALUES COMPARISON (400-700 words, 3+ subsections with ### headings): Compare the origin stories, missions, and brand values of each D2C brand. Cover: founding philosophy, supply chain transparency, sustainability commitments, social impact initiatives, and how their brand identity affects product decisions. Consumers increasingly care about who they buy from — give them the context to decide.`},
		{text: `PRODUCT QUALITY & MATERIALS (400-700 words, 3+ subsections): Deep dive into product quality for each brand. Cover: materials sourcing, manufacturing processes, quality control, durability testing, packaging quality, and unboxing experience. Compare how each brand approaches quality at similar price points.`},
		{text: `SHIPPING, RETURNS & CUSTOMER EXPERIENCE (400-700 words, 3+ subsections): Practical comparison of the buying experience. Cover: shipping speeds and costs, free shipping thresholds, return windows and policies, exchange processes, customer support channels (live chat, email, phone), loyalty programs, and referral perks. Include real-world experiences.`},
	},
	"d2c_validation": {
		{
			text:       `BRAND OVERVIEW & MISSION (400-700 words, 3+ subsections with ### headings): Who is {brand}? Cover: founding story, core mission, what problem they set out to solve, how they source/manufacture, their place in the D2C landscape, notable press coverage, and funding/growth trajectory.`,
			grounded:   `Reference VERIFIED data.`,
			ungrounded: `Use publicly available information.`,
		},
		{text: `PRODUCT QUALITY DEEP DIVE (400-700 words, 3+ subsections): Detailed product quality analysis. Cover: materials used and their origin, manufacturing process, durability based on customer feedback, how quality compares to traditional retail alternatives at similar prices, and any quality certifications or testing standards met.`},
		{text: `ORDERING & UNBOXING EXPERIENCE (400-700 words, 3+ subsections): Walk through the complete customer journey from website browsing to delivery. Cover: website UX, product customization options, checkout process, shipping tracking, packaging design, unboxing experience, product presentation, and included materials (guides, cards, samples).`},
		{text: `CUSTOMER SERVICE & RETURNS (400-700 words, 3+ subsections): Honest assessment of after-purchase support. Cover: return policy details and ease of process, customer service response times by channel, warranty coverage, how they handle complaints and negative feedback, and community/social media presence. Include tips for getting the best support experience.`},
	},
	"d2c_pricing": {
		{
			text:     `ONE-TIME VS SUBSCRIPTION VALUE (400-700 words, 3+ subsections with ### headings): Detailed analysis of {brand}'s pricing models. Compare one-time purchases vs subscription savings, minimum commitments, pause/skip flexibility, and the real per-unit cost at each option. Calculate the break-even point for subscriptions.`,
			grounded: `Reference VERIFIED pricing data.`,
		},
		{text: `HIDDEN COSTS: SHIPPING, RETURNS & ADD-ONS (400-700 words, 3+ subsections): What the product page doesn't prominently display. Cover: shipping costs by order size, free shipping thresholds, international shipping fees, return shipping costs, restocking fees (if any), add-on/accessory pricing, and gift wrapping or customization surcharges.`},
		{text: `BEST DEALS & DISCOUNT STRATEGIES (400-700 words, 3+ subsections): How to get the most value from {brand}. Cover: first-order discounts, referral programs and their value, seasonal sales calendar, bundle deals and their actual savings, email signup perks, social media flash sales, influencer codes, and student/military discounts.`},
	},
	"d2c_transactional": {
		{text: `WHAT YOU'RE GETTING (400-700 words, 3+ subsections with ### headings): Detailed overview of the product range and what to expect. Cover: product categories, customization options, sizing/selection guidance, what's included vs what's sold separately, and any personalization features. Help the buyer feel confident about exactly what they'll receive.`},
		{text: `CUSTOMIZATION & OPTIONS (400-700 words, 3+ subsections): Deep dive into available options. Cover: sizes/variants, color options, customization features, bundle configurations, subscription frequency options, and gift options. Include guidance on how to choose the right configuration for different needs.`},
	},
	"subscription_comparison": {
		{text: `WHAT EACH SERVICE INCLUDES (400-700 words, 3+ subsections with ### headings): Detailed breakdown of what you actually get with each subscription. Cover: content/product library size and quality, exclusive features, update frequency, multi-device access, offline capabilities, and any limitations at each tier.`},
		{text: `CONTENT/PRODUCT LIBRARY ANALYSIS (400-700 words, 3+ subsections): Go deep on the actual value of each library. Cover: breadth and depth of offerings, exclusive vs shared content, new release frequency, quality curation, niche category strengths, and which library serves different interests best.`},
		{text: `SHARING, FAMILY PLANS & MULTI-DEVICE (400-700 words, 3+ subsections): Practical comparison of sharing and family features. Cover: number of profiles, simultaneous streams/users, family plan pricing and per-person cost, device limits, parental controls, shared watchlists or libraries, and offline download limits per account.`},
	},
	"subscription_pricing": {
		{
			text:     `PLAN-BY-PLAN DEEP DIVE (400-700 words, 3+ subsections with ### headings): Go beyond the pricing table — what does each tier actually deliver in practice? Cover: real-world feature differences between tiers, the features that most users actually need, whether the cheapest plan is viable long-term, and the upgrade triggers that push most users to higher tiers.`,
			grounded: `Reference VERIFIED pricing data.`,
		},
		{text: `WHAT'S ACTUALLY INCLUDED AT EACH TIER (400-700 words, 3+ subsections): Feature-by-feature walkthrough of each plan. Cover: ad experience (if applicable), quality/resolution limits, download/offline access, family/sharing features, customer support level, and early access to new features. Flag any surprising limitations.`},
		{text: `UPGRADE & DOWNGRADE STRATEGIES (400-700 words, 3+ subsections): Smart subscription management. Cover: when to upgrade (triggers and indicators), how to downgrade without losing data/history, pause vs cancel decisions, billing cycle optimization, and how to time plan changes to avoid double-billing. Include specific step-by-step instructions.`},
	},
	"subscription_validation": {
		{
			text:     `WHAT YOU GET (400-700 words, 3+ subsections with ### headings): Comprehensive overview of {brand}'s subscription. Cover: what's included at each tier, how the service works day-to-day, the onboarding/setup experience, and how it fits into your routine.`,
			grounded: `Reference VERIFIED data.`,
		},
		{text: `CONTENT/PRODUCT QUALITY DEEP DIVE (400-700 words, 3+ subsections): Honest assessment of the subscription's core offering. Cover: quality of products/content, curation quality, personalization accuracy, freshness/variety, and how it compares to buying individually or using a competitor.`},
		{text: `USER EXPERIENCE & APP QUALITY (400-700 words, 3+ subsections): Review the technical experience. Cover: app/website design and navigation, recommendation algorithm quality, search and discovery features, playback/usage reliability, cross-device sync, and notification management. Include common UX complaints and workarounds.`},
		{text: `CANCELLATION, PAUSING & FLEXIBILITY (400-700 words, 3+ subsections): What happens when you want to stop? Cover: cancellation process (how easy/hard), data retention after cancellation, pause options, contract/commitment length, auto-renewal practices, refund policy, and what you lose access to immediately vs gradually.`},
	},
	"subscription_transactional": {
		{text: `WHAT YOU'RE SIGNING UP FOR (400-700 words, 3+ subsections with ### headings): Clear explanation of exactly what the subscription includes. Cover: what arrives in your first delivery/access period, how the ongoing service works, the commitment level, and what differentiates this from the free version (if applicable).`},
		{text: `FIRST-MONTH EXPERIENCE (400-700 words, 3+ subsections): Detailed walkthrough of what to expect in your first 30 days. Cover: initial setup, first delivery/access, the discovery/onboarding period, when you'll see the full value, common first-month hiccups and how to avoid them, and milestones to hit to maximize the trial.`},
	},
	"finance_eligibility": {
		{text: `COMPREHENSIVE OVERVIEW (400-700 words, 3+ subsections with ### headings): In-depth explanation of "{keyword}" — what it is, how it works mechanically, key terms and jargon explained in plain English, the regulatory landscape, and how it fits into the broader financial picture. Write for someone researching this for the first time who needs to make a decision.`},
		{text: `FACTORS THAT MATTER (400-700 words, 3+ subsections): Detailed breakdown of every factor that affects eligibility/outcomes. Cover: credit score requirements (with specific ranges), income thresholds, documentation needed (complete checklist), common pitfalls that cause rejections, and step-by-step instructions for improving your position.`},
		{text: `COMMON MISTAKES TO AVOID (400-700 words, 3+ subsections): The 5-7 most common mistakes people make when dealing with "{keyword}". For each mistake, explain: what goes wrong, why people make this error, the consequences, and exactly how to avoid it. Include real-world examples and recovery strategies.`},
	},
	"finance_comparison": {
		{text: `WHAT MATTERS WHEN COMPARING (400-700 words, 3+ subsections with ### headings): Expert guide to evaluating financial products for "{keyword}". Cover: the 5-7 most important comparison criteria (APR, fees, terms, flexibility, rewards), how each factor impacts your total cost over time, and which criteria matter most for different financial situations. Explain industry jargon in plain English.`},
		{text: `FEE STRUCTURES EXPLAINED (400-700 words, 3+ subsections): Detailed breakdown of how fees work for each option. Cover: annual fees, transaction fees, late payment penalties, foreign transaction fees, balance transfer fees, cash advance fees, and any hidden charges. Calculate the total annual cost under realistic usage scenarios.`},
		{text: `TERMS & CONDITIONS BREAKDOWN (400-700 words, 3+ subsections): What the fine print actually says. Cover: introductory period details, rate increase triggers, penalty clauses, grace periods, dispute resolution processes, and regulatory protections. Translate legalese into practical implications.`},
		{text: `APPLICATION STRATEGY (400-700 words, 3+ subsections): How to maximize your approval odds and terms. Cover: timing your applications, impact on credit score, pre-qualification options, documentation preparation, negotiation tactics for better rates, and what to do if denied.`},
	},
	"finance_pricing": {
		{text: `UNDERSTANDING THE FEE STRUCTURE (400-700 words, 3+ subsections with ### headings): Comprehensive breakdown of all costs for "{keyword}". Cover: base rates/APR, fee categories (annual, monthly, transaction, penalty), how rates are calculated, variable vs fixed rate implications, and the true all-in cost over 1, 3, and 5 year horizons.`},
		{text: `HIDDEN FEES & FINE PRINT (400-700 words, 3+ subsections): What they don't advertise prominently. Cover: penalty rate triggers, minimum balance fees, inactivity fees, account closure fees, paper statement fees, wire transfer costs, and situational fees most people miss. Calculate the worst-case annual cost scenario.`},
		{text: `RATE NEGOTIATION STRATEGIES (400-700 words, 3+ subsections): Actionable tactics for getting better rates. Cover: when and how to call for rate reductions, leverage points (competitive offers, loyalty tenure, payment history), balance transfer negotiation, fee waiver requests, and when to walk away. Include specific scripts and talking points.`},
	},
	"finance_transactional": {
		{
			text:     `PRODUCT OVERVIEW (400-700 words, 3+ subsections with ### headings): Comprehensive explanation of this financial product. Cover: how it works, key benefits and features, who it's designed for, minimum requirements, and how it compares to the market.`,
			grounded: `Reference VERIFIED data.`,
		},
		{text: `DOCUMENTATION REQUIREMENTS (400-700 words, 3+ subsections): Complete list of what you need to apply. Cover: identification documents, income verification, address proof, financial statements, and any special documentation. Explain how to prepare each document, common mistakes that delay applications, and alternatives for each requirement.`},
		{text: `AFTER APPROVAL — WHAT HAPPENS NEXT (400-700 words, 3+ subsections): Guide to the post-approval process. Cover: activation steps, first-use tips, setting up autopay, mobile app setup, security features to enable, rewards optimization from day one, and common first-month mistakes to avoid.`},
	},
	"health_informational": {
		{text: `COMPREHENSIVE OVERVIEW (400-700 words, 3+ subsections with ### headings): Evidence-based explanation of "{keyword}". Cover: what it is, the science behind it, how it works in the body/mind, historical context, current medical/scientific consensus, and common misconceptions. Write authoritatively but accessibly — no medical jargon without explanation.`},
		{text: `SCIENCE & EVIDENCE REVIEW (400-700 words, 3+ subsections): What research actually shows about "{keyword}". Cover: key clinical studies and their findings, meta-analyses, expert medical opinions, strength of evidence (preliminary vs established), limitations of current research, and areas where science is still evolving. Be honest about uncertainty.`},
		{text: `HOW TO GET STARTED (400-700 words, 3+ subsections): Practical guide to implementing "{keyword}". Cover: beginner steps, dosage/frequency recommendations (with appropriate medical disclaimers), what to expect in the first weeks, tracking progress, and when to adjust your approach. Include red flags that mean you should stop or consult a professional.`},
		{text: `WHEN TO SEEK PROFESSIONAL HELP (400-700 words, 3+ subsections): Clear guidance on professional consultation. Cover: signs that indicate you need professional guidance, types of professionals to consult (and how to find them), questions to ask at appointments, how to evaluate advice quality, insurance/cost considerations, and online vs in-person options.`},
	},
	"health_comparison": {
		{text: `WHAT THE SCIENCE SAYS (400-700 words, 3+ subsections with ### headings): Evidence-based comparison of each option. Cover: clinical study results for each, mechanism of action differences, bioavailability and absorption, interaction potential, and which has the strongest evidence base. Cite research quality levels.`},
		{text: `INGREDIENT/METHOD ANALYSIS (400-700 words, 3+ subsections): Deep dive into what's actually in each product or how each method works. Cover: active ingredients and their dosages, filler/inactive ingredients and their purpose, manufacturing standards (GMP, third-party testing), form factors (pills, powders, liquids), and how ingredient quality varies between brands.`},
		{text: `REAL-WORLD EFFECTIVENESS (400-700 words, 3+ subsections): What users actually experience. Cover: typical timeline to notice results, factors that affect effectiveness (age, diet, lifestyle), who responds best to each option, common side effects and their frequency, and long-term sustainability of results. Include common myths vs reality.`},
	},
	"health_validation": {
		{
			text:     `WHAT IT IS & HOW IT WORKS (400-700 words, 3+ subsections with ### headings): Comprehensive product/approach explanation. Cover: what it contains or involves, the mechanism of action, the scientific rationale, who developed it, and how it fits into the broader health/wellness landscape.`,
			grounded: `Reference VERIFIED data.`,
		},
		{text: `INGREDIENT/EVIDENCE ANALYSIS (400-700 words, 3+ subsections): Detailed examination of the key active components. Cover: each major ingredient's evidence base, optimal dosages vs what's provided, synergistic effects, potential interactions, and how the formulation compares to clinical study dosages. Be specific about evidence quality.`},
		{text: `WHO SHOULD (AND SHOULDN'T) USE IT (400-700 words, 3+ subsections): Honest assessment of the target audience. Cover: ideal user profile, age/health considerations, contraindications, drug interactions to check, pregnancy/nursing considerations, and specific conditions where this should be avoided. Always recommend consulting a healthcare provider.`},
		{text: `DOSAGE, TIMING & BEST PRACTICES (400-700 words, 3+ subsections): Practical usage guide. Cover: recommended dosage and timing, with vs without food, cycling recommendations (if applicable), how to start gradually, what to stack it with (and what to avoid), storage requirements, and signs it's working vs signs to stop.`},
	},
}

// comparisonDefault serves blueprints without a bespoke comparison table.
var comparisonDefault = entry{
	text: `Comparison table with 6-8 rows of meaningful data and 4+ columns. Compare relevant options factually with specific details, not just Yes/No where possible.`,
}

var comparisonTable = map[string]entry{
	"travel_route": {
		text: `Comparison table with 6-8 rows comparing travel options. Columns: Option, Price Range, Duration, Frequency, Baggage Included, Best For. Use realistic but qualified data. Include airlines, budget carriers, trains if applicable, and alternative airports.`,
	},
	"saas_comparison": {
		text:     `Feature comparison table with 8-12 rows for thorough comparison. Include columns for Feature, and one column per product. Use "Yes/No", specific values, or brief descriptions. Cover: core features, pricing, integrations, support, API, mobile app, customization, and security.`,
		grounded: `Use VERIFIED feature data where available.`,
	},
	"saas_validation": {
		text:     `Feature matrix table with 6-8 rows. Columns: Feature, {brand}, Competitor 1, Competitor 2. Compare key capabilities, pricing, ease of use, support quality, and integration options.`,
		grounded: `Use VERIFIED data.`,
	},
	"ecommerce_buying_guide": {
		text: `Product options comparison table with 6-8 rows across different price tiers. Include: Option/Tier, Price Range, Key Features, Limitations, Best For. Cover budget, mid-range, premium, and professional tiers.`,
	},
	"ecommerce_comparison": {
		text: `Product comparison table with 6-8 rows. Columns: Feature, and one column per product. Compare: price, materials/quality, warranty, shipping, return policy, user rating summary, and standout feature. Use specific values over vague descriptions.`,
	},
	"ecommerce_pricing":    ecommerceVsAlternatives,
	"ecommerce_validation": ecommerceVsAlternatives,
	"d2c_comparison": {
		text: `D2C brand comparison table with 6-8 rows. Columns: Attribute, Brand 1, Brand 2, Brand 3. Compare: price range, subscription options, shipping speed, return policy, material quality, sustainability practices, customer ratings.`,
	},
	"d2c_validation":    d2cProductRange,
	"d2c_transactional": d2cProductRange,
	"d2c_pricing": {
		text:     `Pricing comparison table with 6-8 rows. Columns: Product/Plan, One-Time Price, Subscription Price, Savings, Includes. Compare all major product lines and subscription tiers.`,
		grounded: `Use VERIFIED pricing data.`,
	},
	"subscription_comparison": {
		text: `Subscription service comparison table with 6-8 rows. Columns: Feature, and one column per service. Compare: monthly price, library size, simultaneous devices, offline access, family plan, free trial, exclusive content, ad experience.`,
	},
	"subscription_pricing":       subscriptionPlanTable,
	"subscription_validation":    subscriptionPlanTable,
	"subscription_transactional": subscriptionPlanTable,
	"finance_comparison": {
		text: `Financial product comparison table with 6-8 rows. Columns: Feature, and one column per product. Compare: APR/rate, annual fee, intro offer, rewards/benefits, minimum required, approval difficulty, notable terms.`,
	},
	"finance_pricing":       financeRateTable,
	"finance_transactional": financeRateTable,
	"health_comparison": {
		text: `Health product comparison table with 6-8 rows. Columns: Attribute, and one column per product. Compare: key ingredients, dosage, form factor, third-party tested, price per serving, evidence level, side effects.`,
	},
	"health_validation": {
		text:     `Product vs alternatives table with 6-8 rows. Columns: Attribute, {brand}, Alternative 1, Alternative 2. Compare: active ingredients, dosage, price, evidence quality, third-party testing, user ratings.`,
		grounded: `Use VERIFIED data.`,
	},
	"health_informational": {
		text: `Options/methods comparison table with 6-8 rows. Columns: Method, Evidence Level, Cost, Time to Results, Side Effects, Best For. Compare the major approaches available.`,
	},
}

// Shared comparison-table entries for blueprint families.
var (
	ecommerceVsAlternatives = entry{
		text:     `Comparison table with 6-8 rows comparing this product vs alternatives. Columns: Attribute, {brand}, Alternative 1, Alternative 2. Compare: price, quality indicators, shipping, warranty, customer satisfaction.`,
		grounded: `Use VERIFIED data.`,
	}
	d2cProductRange = entry{
		text:     `Product range overview table with 6-8 rows. Columns: Product, Price, Key Benefit, Best For. Cover the main product categories offered by {brand}.`,
		grounded: `Use VERIFIED data.`,
	}
	subscriptionPlanTable = entry{
		text:     `Plan comparison table with 6-8 rows. Columns: Feature, and one column per tier. Compare: price, content access, quality/resolution, devices, ads, downloads, family sharing.`,
		grounded: `Use VERIFIED pricing data.`,
	}
	financeRateTable = entry{
		text:     `Rate/fee comparison table with 6-8 rows. Columns: Fee Type, {brand}, Competitor 1, Industry Average. Compare all major fee categories and rates.`,
		grounded: `Use VERIFIED data.`,
	}
)

// tipsDefault serves blueprints without bespoke tips.
var tipsDefault = entry{
	text: `7-8 practical, actionable tips as items: [{"tip": "Specific Tip Title", "detail": "3-4 sentence explanation with concrete, immediately-useful advice including specific tools, timeframes, or strategies"}]. Every tip must include a specific "do this" action — no vague advice.`,
}

var tipsTable = map[string]entry{
	"travel_route":   travelMoneySavingTips,
	"travel_pricing": travelMoneySavingTips,
	"travel_destination": {
		text: `8 practical travel tips for visiting the destination as items: [{"tip": "Tip Title", "detail": "3-4 sentence explanation with local insider knowledge and specific recommendations"}]. Cover: transport tricks, food recommendations, safety precautions, money-saving hacks, cultural etiquette, connectivity (SIM/WiFi), packing essentials, and off-the-beaten-path advice.`,
	},
	"saas_pricing": {
		text: `7-8 tips for choosing the right plan and saving money as items: [{"tip": "Tip Title", "detail": "3-4 sentence explanation with specific tactics"}]. Cover: evaluating actual usage needs, negotiating enterprise deals (specific phrases to use), leveraging annual billing discounts, free trial maximization strategies, hidden costs to watch for, downgrade strategies, startup/nonprofit discount programs, and contract timing.`,
	},
	"saas_comparison": saasEvaluationTips,
	"saas_validation": saasEvaluationTips,

	"ecommerce_comparison":   ecommerceShoppingTips,
	"ecommerce_buying_guide": ecommerceShoppingTips,
	"ecommerce_pricing":      ecommerceShoppingTips,
	"ecommerce_validation":   ecommerceShoppingTips,

	"d2c_comparison":    d2cShoppingTips,
	"d2c_validation":    d2cShoppingTips,
	"d2c_pricing":       d2cShoppingTips,
	"d2c_transactional": d2cShoppingTips,

	"subscription_comparison":    subscriptionTips,
	"subscription_pricing":       subscriptionTips,
	"subscription_validation":    subscriptionTips,
	"subscription_transactional": subscriptionTips,

	"finance_eligibility":   financeTips,
	"finance_comparison":    financeTips,
	"finance_pricing":       financeTips,
	"finance_transactional": financeTips,

	"health_informational": healthTips,
	"health_comparison":    healthTips,
	"health_validation":    healthTips,
}

// Shared tips entries for blueprint families.
var (
	travelMoneySavingTips = entry{
		text: `8 specific, actionable money-saving tips as items: [{"tip": "Specific Tip Title", "detail": "3-4 sentence explanation with concrete advice — mention specific tool names, exact timeframes, and step-by-step tactics"}]. NO generic tips like "be flexible" — every tip must name a specific tool, technique, or timeframe. Cover: price tracking tools, booking timing, fare classes, loyalty hacks, credit card strategies, airport selection, and packaging tricks.`,
	}
	saasEvaluationTips = entry{
		text: `7-8 evaluation tips as items: [{"tip": "Tip Title", "detail": "3-4 sentence explanation with specific approaches"}]. Cover: running an effective pilot program, specific questions to ask sales teams, migration risk assessment, contract negotiation tactics, reference customer checks, API/integration testing, team adoption strategies, and exit strategy planning.`,
	}
	ecommerceShoppingTips = entry{
		text: `7-8 smart shopping tips as items: [{"tip": "Tip Title", "detail": "3-4 sentence explanation with specific tactics"}]. Cover: using price tracking tools (CamelCamelCamel, Honey, Keepa), timing purchases around sales, stacking cashback (Rakuten, credit card portals), reading reviews effectively, using browser extensions, setting price alerts, checking outlet/refurbished options, and warranty/protection plan evaluation.`,
	}
	d2cShoppingTips = entry{
		text: `7-8 D2C shopping tips as items: [{"tip": "Tip Title", "detail": "3-4 sentence explanation with specific tactics"}]. Cover: maximizing first-order discounts, referral program stacking, subscription vs one-time value math, social media flash sale alerts, email signup perks, bundle optimization, review authentication (spotting fake reviews), and return policy leverage.`,
	}
	subscriptionTips = entry{
		text: `7-8 subscription optimization tips as items: [{"tip": "Tip Title", "detail": "3-4 sentence explanation with specific tactics"}]. Cover: annual vs monthly math, free trial maximization strategy, family plan cost splitting, pause vs cancel decisions, credit card virtual numbers for trial management, content/product sharing legally, downgrade timing, and when to rotate between services.`,
	}
	financeTips = entry{
		text: `7-8 financial tips as items: [{"tip": "Tip Title", "detail": "3-4 sentence explanation with specific tactics"}]. Cover: credit score optimization before applying, rate comparison methodology, fee negotiation scripts, autopay discount setup, introductory offer maximization, balance transfer timing, rewards optimization from day one, and annual fee waiver request strategies.`,
	}
	healthTips = entry{
		text: `7-8 practical wellness tips as items: [{"tip": "Tip Title", "detail": "3-4 sentence explanation with evidence-based advice"}]. Cover: starting safely with low doses, tracking progress with specific apps/methods, optimal timing and frequency, combining with lifestyle factors, quality verification (third-party testing labels to look for), storage best practices, realistic expectation setting, and when to reassess your approach. Always include appropriate medical disclaimers.`,
	}
)
