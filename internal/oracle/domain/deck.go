package domain

// Deck returns the Cobbles Oracle cards. Major arcana are street forces
// and turning points; the four suits (pints, sparks, keys, pennies) map to
// heart, drive, boundaries, and stability.
func Deck() []Card {
	return []Card{
		{
			ID: "MA00", Name: "The New Arrival", Arcana: "Major", Symbol: "🚪", Number: 0,
			Core:   "A fresh start wants a brave first step.",
			Advice: []string{"Do one small action that proves you've begun.", "Introduce yourself to the truth (name it plainly).", "Choose progress over perfection."},
			Shadow: "Running away before it's real.", Blessing: "Momentum and a clean new chapter.",
			Charm: "Open a window for 30 seconds and say: 'New air, new start.'", Mantra: "Begin messy. Begin anyway.",
		},
		{
			ID: "MA01", Name: "The Rovers Return", Arcana: "Major", Symbol: "🍺", Number: 1,
			Core:   "Your people are part of your medicine.",
			Advice: []string{"Ask for support directly (no hints).", "Pick one safe person, not the whole street.", "Let yourself be witnessed."},
			Shadow: "Performing for approval.", Blessing: "Belonging that steadies you.",
			Charm: "Hold a mug, tap once: 'I don't do this alone.'", Mantra: "Community over chaos.",
		},
		{
			ID: "MA02", Name: "The Kabin", Arcana: "Major", Symbol: "📰", Number: 2,
			Core:   "Not everything you hear is true. Verify first.",
			Advice: []string{"Check facts before reacting.", "Keep your private business tight.", "Say less until you know more."},
			Shadow: "Feeding rumours with emotion.", Blessing: "Clarity and control of the narrative.",
			Charm: "Write the story you're afraid is true, then cross out what you can't prove.", Mantra: "Facts first, feelings second.",
		},
		{
			ID: "MA04", Name: "Underworld Factory", Arcana: "Major", Symbol: "🏭", Number: 4,
			Core:   "Work isn't your worth; boundaries are your union.",
			Advice: []string{"Define ownership in writing.", "Say what you can do, and what you can't.", "Stop donating labour to people who won't credit it."},
			Shadow: "Proving yourself into burnout.", Blessing: "Respect, structure, and steadier success.",
			Charm: "Close your laptop and say: 'My rest is part of the job.'", Mantra: "I don't earn love by overworking.",
		},
		{
			ID: "MA13", Name: "The Canal", Arcana: "Major", Symbol: "🌊", Number: 13,
			Core:   "Some things must be let go downstream.",
			Advice: []string{"Name what has ended.", "Grieve on purpose, not by ambush.", "Keep one memento, release the rest."},
			Shadow: "Clinging to what has already left.", Blessing: "Room for what comes next.",
			Charm: "Drop a leaf in running water and watch it go.", Mantra: "Endings make beginnings possible.",
		},
		{
			ID: "MA16", Name: "The Tram", Arcana: "Major", Symbol: "🚋", Number: 16,
			Core:   "The unavoidable truth arrives on schedule.",
			Advice: []string{"Stop negotiating with reality.", "Deal with what is, not what should be.", "Let the crash clear the ground."},
			Shadow: "Pretending the tracks aren't there.", Blessing: "A hard reset you'll later be grateful for.",
			Charm: "Say out loud the sentence you've been avoiding.", Mantra: "Truth now beats wreckage later.",
		},
		{
			ID: "MA18", Name: "The Back Alley", Arcana: "Major", Symbol: "🌙", Number: 18,
			Core:   "Anxiety narrates; it doesn't report.",
			Advice: []string{"Separate fact from fog.", "Do one grounding task with your hands.", "Postpone big decisions until daylight."},
			Shadow: "Spiralling alone in the dark.", Blessing: "Steadiness and perspective.",
			Charm: "Name five things you can see, four you can touch.", Mantra: "The fog is not the forecast.",
		},
		{
			ID: "MA21", Name: "The Street Party", Arcana: "Major", Symbol: "🎉", Number: 21,
			Core:   "Celebrate what you rebuilt.",
			Advice: []string{"Mark the milestone properly.", "Thank the people who held the ladder.", "Let joy be public."},
			Shadow: "Moving the goalposts before the cheer.", Blessing: "Completion and shared joy.",
			Charm: "Tell one person exactly what you finished.", Mantra: "Done deserves a toast.",
		},
		{
			ID: "PI02", Name: "Two of Pints — Gail Platt", Arcana: "Minor", Suit: "Pints", Symbol: "💞", Number: 2,
			Core:   "Love survives on repair, not perfection.",
			Advice: []string{"Apologise for your half only.", "Ask what they actually need.", "Choose the relationship over the argument."},
			Shadow: "Keeping score.", Blessing: "A bond that bends without breaking.",
			Charm: "Make two cups of tea and bring both.", Mantra: "Repair is romance.",
		},
		{
			ID: "PI06", Name: "Six of Pints — Jenny Connor", Arcana: "Minor", Suit: "Pints", Symbol: "🕯️", Number: 6,
			Core:   "Honour what was without living in it.",
			Advice: []string{"Visit the memory, don't move in.", "Tell the story once, kindly.", "Bring one old comfort into the present."},
			Shadow: "Nostalgia as avoidance.", Blessing: "Warmth that travels forward.",
			Charm: "Light a candle for then, blow it out for now.", Mantra: "Remembered, not rented.",
		},
		{
			ID: "PI10", Name: "Ten of Pints — Daniel Osbourne", Arcana: "Minor", Suit: "Pints", Symbol: "📖", Number: 10,
			Core:   "Choose the love that lets you be yourself.",
			Advice: []string{"Notice who you relax around.", "Say the vulnerable thing first.", "Pick peace over performance."},
			Shadow: "Romanticising potential.", Blessing: "A full heart in a real house.",
			Charm: "Write one sentence about what home feels like.", Mantra: "Loved as I am.",
		},
		{
			ID: "SP01", Name: "Ace of Sparks — Sarah Platt", Arcana: "Minor", Suit: "Sparks", Symbol: "⚡", Number: 1,
			Core:   "The idea is ready; are you?",
			Advice: []string{"Take the first concrete step today.", "Tell someone your plan out loud.", "Start smaller than your ego wants."},
			Shadow: "Waiting for permission.", Blessing: "Ignition and fresh confidence.",
			Charm: "Set a ten-minute timer and begin.", Mantra: "Spark before polish.",
		},
		{
			ID: "SP02", Name: "Two of Sparks — Adam Barlow", Arcana: "Minor", Suit: "Sparks", Symbol: "⚖️", Number: 2,
			Core:   "Ambition needs a strategy, not a mood.",
			Advice: []string{"Write the plan in three steps.", "Decide your walk-away point in advance.", "Negotiate on paper, not adrenaline."},
			Shadow: "Scheming instead of building.", Blessing: "Leverage with a clean conscience.",
			Charm: "Draft the email, sleep on it, send at nine.", Mantra: "Cool head, warm ambition.",
		},
		{
			ID: "SPPG", Name: "Page of Sparks — Summer Spellman", Arcana: "Minor", Suit: "Sparks", Symbol: "🌱", Number: 11,
			Core:   "Beginner energy is an asset.",
			Advice: []string{"Ask the obvious question.", "Learn in public.", "Let enthusiasm be visible."},
			Shadow: "Quitting at the first wobble.", Blessing: "Fast growth and honest allies.",
			Charm: "Tell someone: 'I'm new at this, show me.'", Mantra: "Green and growing.",
		},
		{
			ID: "KE01", Name: "Ace of Keys — Evelyn Plummer", Arcana: "Minor", Suit: "Keys", Symbol: "🗝️", Number: 1,
			Core:   "The boundary is the kindness.",
			Advice: []string{"Say no without a paragraph.", "Mean it the first time.", "Expect the pushback; hold anyway."},
			Shadow: "Sharpness where firmness would do.", Blessing: "Relationships that respect your edges.",
			Charm: "Practice the sentence 'That doesn't work for me' in the mirror.", Mantra: "No is a full sentence.",
		},
		{
			ID: "KE03", Name: "Three of Keys — Blanche Hunt", Arcana: "Minor", Suit: "Keys", Symbol: "👓", Number: 3,
			Core:   "Say the true thing plainly.",
			Advice: []string{"Drop the hint; make the statement.", "Aim at the behaviour, not the person.", "Let the silence afterwards do its work."},
			Shadow: "Cruelty dressed as honesty.", Blessing: "Air cleared and respect earned.",
			Charm: "Write the blunt version, then soften only the edges.", Mantra: "Plain words, clean hands.",
		},
		{
			ID: "KE10", Name: "Ten of Keys — Craig Tinker", Arcana: "Minor", Suit: "Keys", Symbol: "📋", Number: 10,
			Core:   "Rules protect; rigidity punishes.",
			Advice: []string{"Keep the rule, explain the reason.", "Make one humane exception.", "Check whether the system still serves."},
			Shadow: "Hiding behind procedure.", Blessing: "Order people can live inside.",
			Charm: "Re-read one of your own rules and ask who it protects.", Mantra: "Firm, fair, flexible.",
		},
		{
			ID: "PE02", Name: "Two of Pennies — Ed Bailey", Arcana: "Minor", Suit: "Pennies", Symbol: "🔨", Number: 2,
			Core:   "Balance the books before they balance you.",
			Advice: []string{"Face the numbers today.", "Cut one cost without drama.", "Tell the truth about what you owe."},
			Shadow: "Juggling instead of choosing.", Blessing: "Solid ground underfoot.",
			Charm: "Open the account you've been avoiding and just look.", Mantra: "Reality is the budget.",
		},
		{
			ID: "PE05", Name: "Five of Pennies — Bernie Winter", Arcana: "Minor", Suit: "Pennies", Symbol: "🎰", Number: 5,
			Core:   "Resource-scan before you panic.",
			Advice: []string{"List what you have.", "Ask for practical help.", "Make do without shame."},
			Shadow: "Chaos as identity.", Blessing: "Survival confidence.",
			Charm: "Write: 'What resources do I have today?'", Mantra: "I can make it work.",
		},
		{
			ID: "PE10", Name: "Ten of Pennies — Liz McDonald", Arcana: "Minor", Suit: "Pennies", Symbol: "🏡", Number: 10,
			Core:   "Set the house rule and stick to it.",
			Advice: []string{"Draw the line at home/work.", "Be consistent.", "Choose what protects your peace."},
			Shadow: "Hardening into bitterness.", Blessing: "Safety and order.",
			Charm: "Write a 'house rule' and post it.", Mantra: "This is how we do it.",
		},
	}
}

// Spreads returns the reading layouts in display order.
func Spreads() []Spread {
	return []Spread{
		{
			ID:          "one_card",
			Name:        "Quick Draw",
			Description: "One card, one message. Perfect for daily guidance or a quick check-in.",
			Positions:   []string{"The Message"},
		},
		{
			ID:          "three_card",
			Name:        "Past, Present, Future",
			Description: "Three Corrie advisors walk with you through time.",
			Positions:   []string{"Past", "Present", "Future"},
		},
		{
			ID:          "street_spread",
			Name:        "The Street Spread",
			Description: "A five-card deep dive into your situation.",
			Positions: []string{
				"The Cobbles — What's underfoot / the real issue",
				"The Rovers — Support available",
				"The Kabin — What's being said / what's hidden",
				"The Tram — The turning point / unavoidable truth",
				"The Street Party — Outcome if you act with self-respect",
			},
			ProOnly: true,
		},
		{
			ID:          "dating_spread",
			Name:        "Is This Love or Chaos?",
			Description: "Five cards for matters of the heart.",
			Positions:   []string{"The Vibe", "Their Pattern", "Your Need", "The Boundary", "Likely Outcome"},
			ProOnly:     true,
		},
		{
			ID:          "money_spread",
			Name:        "Sort Your Pennies",
			Description: "Five cards for financial clarity.",
			Positions:   []string{"Reality Check", "The Leak", "Support Available", "One Rule", "Stability Path"},
			ProOnly:     true,
		},
	}
}
