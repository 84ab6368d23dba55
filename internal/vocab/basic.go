package vocab

// basicWords are function words and beginner vocabulary every learner of
// Chinese meets in the first weeks. They classify as learned without needing
// a card in any deck, so articles are not flooded with particles and pronouns.
var basicWords = []string{
	// particles and markers
	"的", "地", "得", "了", "着", "过", "吗", "呢", "吧", "啊", "呀", "嘛", "哦", "啦", "哇",
	// pronouns
	"我", "你", "他", "她", "它", "您",
	"我们", "你们", "他们", "她们", "它们", "咱们",
	"自己", "大家", "别人",
	// demonstratives and question words
	"这", "那", "这个", "那个", "这些", "那些", "这里", "那里", "这儿", "那儿",
	"什么", "谁", "哪", "哪个", "哪里", "哪儿", "怎么", "怎么样", "为什么", "多少", "几", "什么时候",
	// copulas, auxiliaries, common verbs
	"是", "有", "在", "会", "能", "可以", "要", "想", "应该", "必须", "得到",
	"来", "去", "到", "给", "让", "被", "把", "对", "向", "从", "跟", "为", "用", "比",
	"说", "看", "听", "读", "写", "问", "叫", "做", "作", "吃", "喝", "买", "卖",
	"走", "跑", "坐", "站", "住", "开", "关", "拿", "放", "找", "等", "帮",
	"上", "下", "进", "出", "回", "过来", "过去", "起来", "出来", "进来", "回来", "回去",
	// conjunctions and connectives
	"和", "或", "或者", "但", "但是", "可是", "因为", "所以", "如果", "虽然", "然后",
	"还是", "而且", "不过", "就是", "只是", "于是", "而", "并", "并且",
	// adverbs and negation
	"不", "没", "没有", "别", "很", "太", "最", "更", "真", "都", "也", "还", "又", "再",
	"就", "才", "只", "先", "已经", "正在", "马上", "一起", "一直", "常常", "经常",
	"非常", "特别", "比较", "可能", "一定", "当然", "其实", "真的",
	// numerals and quantity
	"零", "一", "二", "两", "三", "四", "五", "六", "七", "八", "九", "十",
	"百", "千", "万", "亿", "半", "第一", "一些", "一点", "有点", "每",
	// measure words
	"个", "只", "条", "张", "本", "件", "些", "次", "种", "位", "块", "斤", "杯", "瓶",
	// time
	"年", "月", "日", "号", "天", "点", "分", "秒", "分钟", "小时", "时候", "时间",
	"今天", "明天", "昨天", "前天", "后天", "现在", "以前", "以后", "最近",
	"早上", "上午", "中午", "下午", "晚上", "夜里", "白天",
	"星期", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期天", "星期日", "周末",
	"今年", "明年", "去年", "上个月", "下个月",
	// directions and locations
	"上面", "下面", "左边", "右边", "前面", "后面", "里面", "外面", "中间", "旁边", "对面", "附近",
	"里", "外", "前", "后", "左", "右", "东", "南", "西", "北", "中",
	// common adjectives
	"好", "坏", "大", "小", "多", "少", "新", "旧", "快", "慢", "高", "低", "长", "短",
	"早", "晚", "远", "近", "冷", "热", "忙", "累", "难", "错", "贵", "老", "漂亮",
	// everyday nouns
	"人", "男人", "女人", "朋友", "先生", "小姐", "老师", "学生", "孩子",
	"爸爸", "妈妈", "哥哥", "姐姐", "弟弟", "妹妹", "家", "家人",
	"东西", "事情", "事", "地方", "名字", "问题", "话", "字", "书", "水", "饭", "菜", "肉",
	"车", "路", "门", "家里", "学校", "工作", "钱", "手", "头", "眼睛", "身体",
	"中国", "中文", "汉语", "英语", "国",
	// common verbs of daily life
	"学", "学习", "喜欢", "爱", "觉得", "知道", "认识", "希望", "谢谢", "不客气",
	"再见", "你好", "对不起", "没关系", "请", "欢迎",
	"睡觉", "起床", "休息", "玩", "笑", "哭", "送", "接", "穿", "洗", "打", "打电话",
}

// numeralRunes are the characters that form Chinese numbers.
var numeralRunes = map[rune]bool{
	'零': true, '一': true, '二': true, '两': true, '三': true, '四': true,
	'五': true, '六': true, '七': true, '八': true, '九': true, '十': true,
	'百': true, '千': true, '万': true, '亿': true,
}

var basicSet = func() map[string]bool {
	set := make(map[string]bool, len(basicWords))
	for _, word := range basicWords {
		set[word] = true
	}
	return set
}()

// IsBasic reports whether a word belongs to the basic vocabulary. Any string
// made of numeral characters only, like 十五 or 三百, also counts.
func IsBasic(word string) bool {
	if basicSet[word] {
		return true
	}
	if word == "" {
		return false
	}
	for _, r := range word {
		if !numeralRunes[r] {
			return false
		}
	}
	return true
}

// IsNumeralRune reports whether r is a Chinese numeral character.
func IsNumeralRune(r rune) bool {
	return numeralRunes[r]
}
