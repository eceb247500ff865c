package script

import "text/template"

// templateKey addresses one template in the catalog.
type templateKey struct {
	scriptType ScriptType
	tone       Tone
}

// templateData is the placeholder set shared by all templates.
type templateData struct {
	ProductName    string
	TargetAudience string
	BenefitsList   string
	PrimaryBenefit string
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=error").Parse(text))
}

// catalog holds the six fixed templates (2 script types x 3 tones),
// parsed once at startup.
var catalog = map[templateKey]*template.Template{
	{TypeColdCall, ToneProfessional}: mustParse("cold_call/professional", `
Hello, this is [Your Name] from [Company]. I hope I'm not catching you at a bad time.

I'm reaching out to {{.TargetAudience}} because I know you're always looking for ways to {{.PrimaryBenefit}}.

We've developed {{.ProductName}} that specifically helps businesses like yours achieve:
{{.BenefitsList}}

I'd love to show you how {{.ProductName}} has helped similar companies in your industry.

Would you have 15 minutes this week for a quick demonstration? I promise it will be worth your time.

What would work better for you - Tuesday afternoon or Thursday morning?
`),
	{TypeColdCall, ToneCasual}: mustParse("cold_call/casual", `
Hi there! This is [Your Name] from [Company].

Quick question - are you still dealing with [common problem] in your business?

I've got something that might interest you. It's called {{.ProductName}}, and it's designed specifically for {{.TargetAudience}}.

Here's what makes it special:
{{.BenefitsList}}

Look, I know you're busy, so how about this - give me just 10 minutes to show you how this works, and if you don't see the value, no worries at all.

When would be a good time to chat briefly?
`),
	{TypeColdCall, ToneEnthusiastic}: mustParse("cold_call/enthusiastic", `
Hello! This is [Your Name] from [Company], and I have some exciting news for {{.TargetAudience}}!

We've just launched {{.ProductName}}, and the results our clients are seeing are incredible:
{{.BenefitsList}}

I'm so confident this will transform your business that I want to offer you a personal demonstration at no cost.

This is a game-changer, and I'd hate for you to miss out on getting ahead of your competition.

Can we schedule 20 minutes this week? Trust me, this will be the best 20 minutes you'll invest in your business this month!

What day works best for you?
`),
	{TypePresentation, ToneProfessional}: mustParse("presentation/professional", `
Good [morning/afternoon], everyone. Thank you for taking the time to learn about {{.ProductName}}.

Today, I'm here to show you how {{.ProductName}} can specifically benefit {{.TargetAudience}}.

Let me start with a question: How many of you have experienced [common pain point]?

[Pause for responses]

That's exactly why we created {{.ProductName}}. Our solution addresses these challenges by providing:
{{.BenefitsList}}

Over the next [X] minutes, I'll show you exactly how this works and share some real results from companies just like yours.

By the end of this presentation, you'll understand:
- How {{.ProductName}} solves your specific challenges
- The measurable impact you can expect
- How to get started immediately

Let's begin with a quick demonstration...
`),
	{TypePresentation, ToneCasual}: mustParse("presentation/casual", `
Hey everyone! Thanks for being here today.

So, let me guess - you're probably thinking "another product demo, right?"

Well, {{.ProductName}} is different, and I think you'll see why.

We built this specifically for {{.TargetAudience}} because we kept hearing the same frustrations over and over.

Here's what {{.ProductName}} actually does:
{{.BenefitsList}}

Instead of just talking about it, let me show you. I'm going to walk through a real example that I think you'll find pretty interesting.

Ready? Let's dive in...
`),
	{TypePresentation, ToneEnthusiastic}: mustParse("presentation/enthusiastic", `
Welcome everyone! I am SO excited to share {{.ProductName}} with you today!

This is honestly one of the most innovative solutions I've seen for {{.TargetAudience}}, and I can't wait to show you why.

Before we start, let me ask - who here is ready to revolutionize the way you [core function]?

[Pause for energy]

Perfect! Because {{.ProductName}} is going to blow your minds with:
{{.BenefitsList}}

I've got some incredible success stories to share, and by the time we're done, you're going to want to get started immediately.

This is going to be amazing - let's jump right in!
`),
}

// lookupTemplate resolves a template for the given script type and tone.
// The default arm makes the fallback policy explicit: a tone outside the
// catalog resolves to the professional phrasing of the same family.
func lookupTemplate(scriptType ScriptType, tone Tone) *template.Template {
	if t, ok := catalog[templateKey{scriptType, tone}]; ok {
		return t
	}
	return catalog[templateKey{scriptType, ToneProfessional}]
}
