package gen

import (
	"math/rand/v2"
	"sort"
	"strings"
)

// weightedWord pairs a word with its occurrence count on the web, per the
// n-gram dataset curated by Peter Norvig (http://norvig.com/ngrams/).
type weightedWord struct {
	word  string
	count uint64
}

// commonWords lists the most frequent English words in descending frequency
// order. The counts are web occurrence counts from the Norvig dataset.
var commonWords = []weightedWord{
	{"the", 23135851162}, {"of", 13151942776}, {"and", 12997637966},
	{"to", 12136980858}, {"a", 9081174698}, {"in", 8469404971},
	{"for", 5933321709}, {"is", 4705743816}, {"on", 3750423199},
	{"that", 3400031103}, {"by", 3350048871}, {"this", 3228469771},
	{"with", 3183110675}, {"i", 3086225277}, {"you", 2996181025},
	{"it", 2813163874}, {"not", 2633487141}, {"or", 2590739907},
	{"be", 2398724162}, {"are", 2393614870}, {"from", 2275595356},
	{"at", 2272272772}, {"as", 2247431740}, {"your", 2062066547},
	{"all", 2022459848}, {"have", 1564202750}, {"new", 1551258643},
	{"more", 1544771673}, {"an", 1518266684}, {"was", 1483428678},
	{"we", 1390661912}, {"will", 1356293441}, {"home", 1276852170},
	{"can", 1242323499}, {"us", 1229112622}, {"about", 1226734006},
	{"if", 1134987907}, {"page", 1082121730}, {"my", 1059793441},
	{"has", 1046319984}, {"search", 1024093118}, {"free", 1014107316},
	{"but", 999899654}, {"our", 998757982}, {"one", 993536631},
	{"other", 978481319}, {"do", 950751722}, {"no", 937112320},
	{"information", 932594387}, {"time", 908705570}, {"they", 883223816},
	{"site", 844310242}, {"he", 842847219}, {"up", 829969374},
	{"may", 827822032}, {"what", 812395582}, {"which", 810514085},
	{"their", 782849411}, {"news", 755424983}, {"out", 741601852},
	{"use", 719980257}, {"any", 710741293}, {"there", 701170205},
	{"see", 681410380}, {"only", 661844114}, {"so", 661809559},
	{"his", 660177731}, {"when", 650621178}, {"contact", 645824184},
	{"here", 639711198}, {"business", 637134177}, {"who", 630927278},
	{"web", 619571575}, {"also", 616829742}, {"now", 611387736},
	{"help", 611054034}, {"get", 605984508}, {"view", 602279334},
	{"online", 601317059}, {"first", 578161543}, {"am", 576436203},
	{"been", 575019382}, {"would", 572644147}, {"how", 571848080},
	{"were", 570699558}, {"me", 566617666}, {"services", 562206659},
	{"some", 548829454}, {"these", 541003982}, {"click", 536746424},
	{"its", 525627757}, {"like", 520585287}, {"service", 519537222},
	{"than", 502609275}, {"find", 502043038}, {"price", 501651226},
	{"date", 488967374}, {"back", 488024109}, {"top", 484213771},
	{"people", 480303376}, {"had", 480232730}, {"list", 472590641},
	{"name", 464532702}, {"just", 462836169}, {"over", 459222855},
	{"state", 453104133}, {"year", 451092583}, {"day", 446236148},
	{"into", 445315294}, {"email", 443949646}, {"two", 441398439},
	{"health", 440416431}, {"world", 425465874}, {"next", 421188061},
	{"used", 419403871}, {"go", 415004496}, {"work", 406420994},
	{"last", 406396278}, {"most", 401981240}, {"music", 391100000},
}

// WordGenerator returns random words at the frequency in which they appear
// on the internet. Lower-indexed words are more frequent; SetWordLimit
// restricts generation to the top N words.
type WordGenerator struct {
	rng   *rand.Rand
	limit int
	cum   []uint64 // cumulative counts over commonWords[:limit]
	total uint64
}

// MaxWordLimit returns how many unique words the generator can produce.
func MaxWordLimit() int {
	return len(commonWords)
}

// NewWordGenerator creates a generator over the full word table, seeded with
// seed.
func NewWordGenerator(seed uint64) *WordGenerator {
	g := &WordGenerator{}
	g.SetWordLimit(len(commonWords))
	g.Reset(seed)

	return g
}

// Reset restores the generator's randomness for the given seed.
func (g *WordGenerator) Reset(seed uint64) {
	g.rng = rand.New(rand.NewPCG(seed, seed))
}

// SetWordLimit restricts generation to the top limit words. Values outside
// [1, MaxWordLimit] select the whole table. Returns the limit actually set.
func (g *WordGenerator) SetWordLimit(limit int) int {
	if limit <= 0 || limit > len(commonWords) {
		limit = len(commonWords)
	}
	g.limit = limit

	g.cum = make([]uint64, limit)
	g.total = 0
	for i := 0; i < limit; i++ {
		g.total += commonWords[i].count
		g.cum[i] = g.total
	}

	return limit
}

// Word returns a random word, weighted by web occurrence frequency.
func (g *WordGenerator) Word() string {
	target := g.rng.Uint64N(g.total)
	i := sort.Search(g.limit, func(i int) bool { return g.cum[i] > target })

	return commonWords[i].word
}

// Sentence builds a space-joined string of random words truncated to exactly
// length bytes.
func (g *WordGenerator) Sentence(length int) string {
	var sb strings.Builder
	for sb.Len() <= length {
		sb.WriteString(g.Word())
		sb.WriteByte(' ')
	}

	return sb.String()[:length]
}
