package stoplist

// DomainExtension is appended to every loaded stopword list: climate-news
// domain words that appear in nearly every article, plus functional
// particles and connectives the base list misses.
var DomainExtension = []string{
	// domain
	"기후", "변화", "기후변화", "문제", "영향", "대응", "위기", "관련", "분야",
	"상황", "사회", "정부", "정책", "전문가", "연구", "발표", "최근", "이날",
	"이번", "가능성", "필요", "강조",
	// particles and connectives
	"에", "가", "이은", "을", "를", "의", "도", "또한", "더", "위해", "에게",
	"에게서", "에게로", "부터", "어", "우선", "간", "이후", "하는", "입니다",
	"할", "예정",
}
