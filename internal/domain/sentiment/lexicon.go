package sentiment

// defaultLexicon maps lowercase words to a polarity in [-1, 1]. It covers
// general English evaluative words plus the register of match reports and
// commentary.
var defaultLexicon = map[string]float64{ //nolint:gochecknoglobals // read-only table, copied per scorer
	// strong positive
	"excellent": 1.0, "perfect": 1.0, "best": 1.0, "superb": 1.0, "outstanding": 0.9,
	"magnificent": 1.0, "brilliant": 0.9, "sensational": 0.9, "phenomenal": 0.9,
	"world-class": 0.9, "masterclass": 0.9, "wonderful": 1.0, "incredible": 0.9,
	"unstoppable": 0.8, "legendary": 0.8, "glorious": 0.8, "stunning": 0.8,
	"great": 0.8, "impressive": 0.8, "fantastic": 0.8, "amazing": 0.8,
	"dominant": 0.7, "clinical": 0.7, "triumph": 0.8, "heroic": 0.8,
	// mild positive
	"good": 0.7, "strong": 0.5, "solid": 0.4, "composed": 0.4, "sharp": 0.4,
	"confident": 0.5, "effective": 0.5, "creative": 0.5, "energetic": 0.4,
	"determined": 0.4, "resilient": 0.5, "disciplined": 0.4, "organized": 0.3,
	"comfortable": 0.4, "improved": 0.4, "decisive": 0.5, "crucial": 0.3,
	"praised": 0.6, "happy": 0.8, "pleased": 0.5, "proud": 0.7, "delighted": 0.8,
	"deserved": 0.4, "win": 0.5, "wins": 0.5, "won": 0.5, "victory": 0.6,
	"beautiful": 0.85, "lovely": 0.5, "nice": 0.6, "fine": 0.4, "positive": 0.3,
	"exciting": 0.6, "entertaining": 0.5, "skilled": 0.5, "technical": 0.2,
	"accurate": 0.4, "fast": 0.2, "quick": 0.3, "clever": 0.5, "smart": 0.4,
	"unbeaten": 0.6, "undefeated": 0.6, "champions": 0.5, "secured": 0.3,
	"respected": 0.5, "consistent": 0.4, "hero": 0.7, "star": 0.5,
	"well": 0.3, "better": 0.5, "superior": 0.6, "excited": 0.6, "hope": 0.2,
	// mild negative
	"poor": -0.4, "weak": -0.4, "slow": -0.3, "sloppy": -0.5, "clumsy": -0.5,
	"fragile": -0.4, "unstable": -0.4, "ineffective": -0.5, "disorganized": -0.5,
	"frustrated": -0.5, "frustrating": -0.5, "disappointing": -0.6,
	"disappointed": -0.6, "struggled": -0.4, "struggling": -0.4, "worried": -0.4,
	"costly": -0.4, "lost": -0.3, "loss": -0.4, "defeat": -0.5, "beaten": -0.4,
	"injured": -0.4, "injury": -0.3, "suspended": -0.3, "criticism": -0.4,
	"criticized": -0.5, "criticised": -0.5, "blamed": -0.5, "mistake": -0.5,
	"mistakes": -0.5, "error": -0.4, "errors": -0.4, "problem": -0.3,
	"problems": -0.3, "wrong": -0.5, "unlucky": -0.3, "sad": -0.5, "worse": -0.6,
	"booed": -0.6, "controversial": -0.3, "missed": -0.3, "awkward": -0.3,
	"failed": -0.5, "failure": -0.5, "collapse": -0.6, "sacked": -0.5,
	// strong negative
	"bad": -0.7, "terrible": -1.0, "awful": -1.0, "horrible": -1.0, "worst": -1.0,
	"disaster": -0.9, "disastrous": -0.9, "dreadful": -1.0, "abysmal": -1.0,
	"pathetic": -1.0, "shambolic": -0.9, "humiliating": -0.9, "embarrassing": -0.8,
	"disgraceful": -1.0, "shocking": -0.8, "horrendous": -1.0, "miserable": -0.8,
	"catastrophic": -1.0, "blunder": -0.7, "howler": -0.7, "racism": -0.8,
	"scandal": -0.7, "angry": -0.6, "furious": -0.7, "hate": -0.8,
}

// defaultIntensifiers scale the polarity of the word that follows them.
var defaultIntensifiers = map[string]float64{ //nolint:gochecknoglobals // read-only table
	"very": 1.3, "really": 1.3, "extremely": 1.5, "incredibly": 1.5, "so": 1.2,
	"absolutely": 1.5, "truly": 1.3, "highly": 1.3, "utterly": 1.5,
	"totally": 1.3, "particularly": 1.2, "most": 1.3, "quite": 1.1,
	"pretty": 1.1, "slightly": 0.6, "somewhat": 0.7, "fairly": 0.8,
}

// defaultNegations flip the polarity of the next evaluative word.
var defaultNegations = map[string]struct{}{ //nolint:gochecknoglobals // read-only table
	"not": {}, "never": {}, "no": {}, "hardly": {}, "barely": {}, "without": {},
	"isn't": {}, "wasn't": {}, "aren't": {}, "weren't": {}, "don't": {},
	"doesn't": {}, "didn't": {}, "can't": {}, "cannot": {}, "couldn't": {},
	"won't": {}, "wouldn't": {}, "nothing": {}, "nobody": {},
}

// DefaultLexicon returns a copy of the built-in word polarities.
func DefaultLexicon() map[string]float64 {
	out := make(map[string]float64, len(defaultLexicon))
	for w, p := range defaultLexicon {
		out[w] = p
	}
	return out
}
