package normalize

// irregulars maps common irregular word forms to their base form.
// These do not follow regular stemming rules, so they are looked up
// before the stemmer runs.
var irregulars = map[string]string{
	// be
	"was": "be", "were": "be", "been": "be", "being": "be", "am": "be", "is": "be", "are": "be",
	// have
	"had": "have", "has": "have", "having": "have",
	// do
	"did": "do", "does": "do", "doing": "do", "done": "do",
	// go
	"went": "go", "goes": "go", "going": "go", "gone": "go",
	// run
	"ran": "run", "running": "run", "runs": "run",
	// say
	"said": "say", "says": "say", "saying": "say",
	// make
	"made": "make", "makes": "make", "making": "make",
	// take
	"took": "take", "takes": "take", "taking": "take", "taken": "take",
	// come
	"came": "come", "comes": "come", "coming": "come",
	// see
	"saw": "see", "sees": "see", "seeing": "see", "seen": "see",
	// know
	"knew": "know", "knows": "know", "knowing": "know", "known": "know",
	// get
	"got": "get", "gets": "get", "getting": "get", "gotten": "get",
	// give
	"gave": "give", "gives": "give", "giving": "give", "given": "give",
	// find
	"found": "find", "finds": "find", "finding": "find",
	// think
	"thought": "think", "thinks": "think", "thinking": "think",
	// tell
	"told": "tell", "tells": "tell", "telling": "tell",
	// become
	"became": "become", "becomes": "become", "becoming": "become",
	// leave
	"left": "leave", "leaves": "leave", "leaving": "leave",
	// feel
	"felt": "feel", "feels": "feel", "feeling": "feel",
	// bring
	"brought": "bring", "brings": "bring", "bringing": "bring",
	// begin
	"began": "begin", "begins": "begin", "beginning": "begin", "begun": "begin",
	// keep
	"kept": "keep", "keeps": "keep", "keeping": "keep",
	// hold
	"held": "hold", "holds": "hold", "holding": "hold",
	// write
	"wrote": "write", "writes": "write", "writing": "write", "written": "write",
	// stand
	"stood": "stand", "stands": "stand", "standing": "stand",
	// hear
	"heard": "hear", "hears": "hear", "hearing": "hear",
	// mean
	"meant": "mean", "means": "mean", "meaning": "mean",
	// meet
	"met": "meet", "meets": "meet", "meeting": "meet",
	// pay
	"paid": "pay", "pays": "pay", "paying": "pay",
	// sit
	"sat": "sit", "sits": "sit", "sitting": "sit",
	// speak
	"spoke": "speak", "speaks": "speak", "speaking": "speak", "spoken": "speak",
	// lead
	"led": "lead", "leads": "lead", "leading": "lead",
	// read (irregular pronunciation, not spelling)
	"reads": "read", "reading": "read",
	// grow
	"grew": "grow", "grows": "grow", "growing": "grow", "grown": "grow",
	// lose
	"lost": "lose", "loses": "lose", "losing": "lose",
	// fall
	"fell": "fall", "falls": "fall", "falling": "fall", "fallen": "fall",
	// send
	"sent": "send", "sends": "send", "sending": "send",
	// build
	"built": "build", "builds": "build", "building": "build",
	// understand
	"understood": "understand", "understands": "understand", "understanding": "understand",
	// draw
	"drawn": "draw", "drew": "draw", "draws": "draw", "drawing": "draw",
	// break
	"broke": "break", "breaks": "break", "breaking": "break", "broken": "break",
	// spend
	"spent": "spend", "spends": "spend", "spending": "spend",
	// catch
	"caught": "catch", "catches": "catch", "catching": "catch",
	// buy
	"bought": "buy", "buys": "buy", "buying": "buy",
	// fight
	"fought": "fight", "fights": "fight", "fighting": "fight",
	// teach
	"taught": "teach", "teaches": "teach", "teaching": "teach",
	// sell
	"sold": "sell", "sells": "sell", "selling": "sell",
	// seek
	"sought": "seek", "seeks": "seek", "seeking": "seek",
	// throw
	"threw": "throw", "throws": "throw", "throwing": "throw", "thrown": "throw",
	// show (partially irregular)
	"showed": "show", "shows": "show", "showing": "show", "shown": "show",
	// choose
	"chose": "choose", "chooses": "choose", "choosing": "choose", "chosen": "choose",
	// sleep
	"slept": "sleep", "sleeps": "sleep", "sleeping": "sleep",
	// wear
	"worn": "wear", "wore": "wear", "wears": "wear", "wearing": "wear",
	// win
	"won": "win", "wins": "win", "winning": "win",
	// common nouns
	"children": "child", "men": "man", "women": "woman",
}
