package morph

// defaultIrregular holds the curated irregular verbs and plurals. Bases in
// this table return exactly these forms (plus the base); no regular rule is
// ever applied on top of them.
func defaultIrregular() map[string][]string {
	return map[string][]string{
		"be":    {"am", "is", "are", "was", "were", "been", "being"},
		"have":  {"has", "had", "having"},
		"do":    {"does", "did", "done", "doing"},
		"go":    {"goes", "went", "gone", "going"},
		"get":   {"gets", "got", "gotten", "getting"},
		"make":  {"makes", "made", "making", "maker", "makers"},
		"take":  {"takes", "took", "taken", "taking", "taker"},
		"come":  {"comes", "came", "coming"},
		"see":   {"sees", "saw", "seen", "seeing", "seer"},
		"know":  {"knows", "knew", "known", "knowing"},
		"think": {"thinks", "thought", "thinking", "thinker"},
		"give":  {"gives", "gave", "given", "giving", "giver"},
		"say":   {"says", "said", "saying"},
		"tell":  {"tells", "told", "telling", "teller"},
		"find":  {"finds", "found", "finding", "finder"},
		"leave": {"leaves", "left", "leaving"},
		"feel":  {"feels", "felt", "feeling"},
		"bring": {"brings", "brought", "bringing"},
		"begin": {"begins", "began", "begun", "beginning"},
		"keep":  {"keeps", "kept", "keeping", "keeper"},
		"hold":  {"holds", "held", "holding", "holder"},
		"write": {"writes", "wrote", "written", "writing", "writer"},
		"stand": {"stands", "stood", "standing"},
		"hear":  {"hears", "heard", "hearing"},
		"let":   {"lets", "letting"},
		"mean":  {"means", "meant", "meaning"},
		"set":   {"sets", "setting", "setter"},
		"meet":  {"meets", "met", "meeting"},
		"run":   {"runs", "ran", "running", "runner"},
		"pay":   {"pays", "paid", "paying", "payment"},
		"sit":   {"sits", "sat", "sitting"},
		"speak": {"speaks", "spoke", "spoken", "speaking", "speaker"},
		"lie":   {"lies", "lay", "lain", "lying"},
		"lead":  {"leads", "led", "leading", "leader"},
		"read":  {"reads", "reading", "reader"},
		"grow":  {"grows", "grew", "grown", "growing", "growth"},
		"lose":  {"loses", "lost", "losing", "loser"},
		"fall":  {"falls", "fell", "fallen", "falling"},
		"send":  {"sends", "sent", "sending", "sender"},
		"build": {"builds", "built", "building", "builder"},
		"draw":  {"draws", "drew", "drawn", "drawing"},
		"break": {"breaks", "broke", "broken", "breaking"},
		"spend": {"spends", "spent", "spending"},
		"cut":   {"cuts", "cutting", "cutter"},
		"rise":  {"rises", "rose", "risen", "rising"},
		"drive": {"drives", "drove", "driven", "driving", "driver"},
		"buy":   {"buys", "bought", "buying", "buyer"},
		"sell":  {"sells", "sold", "selling", "seller"},
		"wear":  {"wears", "wore", "worn", "wearing"},
		"teach": {"teaches", "taught", "teaching", "teacher"},
		"catch": {"catches", "caught", "catching", "catcher"},
		"fight": {"fights", "fought", "fighting", "fighter"},
		"choose": {"chooses", "chose", "chosen", "choosing"},
		"win":   {"wins", "won", "winning", "winner"},
		"eat":   {"eats", "ate", "eaten", "eating", "eater"},
		"drink": {"drinks", "drank", "drunk", "drinking"},
		"sleep": {"sleeps", "slept", "sleeping", "sleeper"},
		"swim":  {"swims", "swam", "swum", "swimming", "swimmer"},
		"sing":  {"sings", "sang", "sung", "singing", "singer"},
		"ring":  {"rings", "rang", "rung", "ringing", "ringer"},
		"fly":   {"flies", "flew", "flown", "flying", "flyer"},
		"throw": {"throws", "threw", "thrown", "throwing"},
		"blow":  {"blows", "blew", "blown", "blowing"},
		"wake":  {"wakes", "woke", "woken", "waking"},
		"shut":  {"shuts", "shutting", "shutter"},
		"hit":   {"hits", "hitting", "hitter"},
		"put":   {"puts", "putting"},
		"cost":  {"costs", "costing"},
		"hurt":  {"hurts", "hurting"},
		"quit":  {"quits", "quitting", "quitter"},
		"understand": {"understands", "understood", "understanding"},

		// Irregular plurals.
		"child":  {"children"},
		"man":    {"men"},
		"woman":  {"women"},
		"person": {"people"},
		"life":   {"lives"},
		"leaf":   {"leaves"},
		"knife":  {"knives"},
		"wife":   {"wives"},
		"half":   {"halves"},
		"self":   {"selves"},
		"loaf":   {"loaves"},
		"thief":  {"thieves"},
		"foot":   {"feet"},
		"tooth":  {"teeth"},
		"mouse":  {"mice"},
		"goose":  {"geese"},
		"ox":     {"oxen"},
		"sheep":  {"sheep"},
		"deer":   {"deer"},
		"fish":   {"fish", "fishes", "fishing", "fisher"},
	}
}
