package keyword

// Lexicon is a disjoint pair of positive and negative keyword phrases.
type Lexicon struct {
	Positive []string `koanf:"positive"`
	Negative []string `koanf:"negative"`
}

// Empty reports whether the lexicon has no keywords at all.
func (l Lexicon) Empty() bool { return len(l.Positive) == 0 && len(l.Negative) == 0 }

// LexiconSet is the pair of lexicons used for one entity kind: match
// reporting register for news, commentary register for video transcripts.
type LexiconSet struct {
	News  Lexicon
	Video Lexicon
}

// ClubNews is the default news lexicon for clubs.
func ClubNews() Lexicon {
	return Lexicon{
		Positive: []string{
			"victory", "win", "wins", "dominated", "undefeated", "clean sheet", "scored",
			"comeback", "tactical", "resilient", "disciplined", "title contenders", "champions",
			"progress", "secured", "in control", "comfortable", "momentum", "improved", "organized",
			"solid", "effective", "creative", "energetic", "clinical", "determined", "sharp",
		},
		Negative: []string{
			"loss", "lost", "defeat", "conceded", "fragile", "eliminated", "controversy",
			"scandal", "penalty", "missed chances", "errors", "draw", "disorganized",
			"lack of discipline", "injuries", "tensions", "sacked", "booed", "criticism",
			"unstable", "problem", "failure", "collapse", "poor", "ineffective",
		},
	}
}

// PlayerNews is the default news lexicon for players.
func PlayerNews() Lexicon {
	return Lexicon{
		Positive: []string{
			"goal", "goals", "assist", "assists", "hat-trick", "clean sheet", "save", "saves",
			"tackle", "tackles", "dribble", "dribbles", "pass", "passes", "interception",
			"decisive", "crucial", "praised", "dominant", "unstoppable", "breakthrough",
			"world-class", "outstanding", "brilliant", "incredible", "captain", "leader",
			"matchwinner", "star", "hero", "highlight", "signed", "respected", "strong",
			"sharp", "accurate", "fast", "vision", "effort", "resilient", "composed",
			"skilled", "clinical", "technical", "legendary", "mentor", "consistency",
		},
		Negative: []string{
			"injury", "injured", "suspended", "ban", "fight", "conflict", "controversial",
			"criticism", "criticized", "booed", "racism", "error", "errors", "mistake",
			"mistakes", "red card", "yellow card", "weak", "bad", "poor", "dropped",
			"disappointing", "slow", "sloppy", "unfit", "underperform", "miss", "missed",
			"insecure", "lost", "defeat", "costly", "ineffective", "fragile", "clumsy",
			"struggled", "criticise", "blamed", "penalty missed", "foul", "accused",
			"failed", "trouble", "frustrated", "awkward",
		},
	}
}

// Video is the default commentary lexicon for video transcripts.
func Video() Lexicon {
	return Lexicon{
		Positive: []string{
			"goal", "goals", "assist", "assists", "hat-trick", "clean sheet", "save", "saves",
			"dribble", "tackle", "header", "pass", "interception", "counter attack",
			"fast break", "free kick", "long shot", "great run", "world-class", "brilliant",
			"amazing", "fantastic", "unstoppable", "match winner", "man of the match", "celebration",
		},
		Negative: []string{
			"miss", "missed chance", "penalty miss", "red card", "yellow card", "own goal",
			"injury", "collision", "error", "foul", "dangerous play", "handball", "offside",
			"controversial", "poor clearance", "bad tackle", "blunder", "slip", "mistake",
			"blocked", "slow reaction", "disallowed goal",
		},
	}
}
