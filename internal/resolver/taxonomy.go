package resolver

// Static bilingual tables: greetings, intent keywords, and the site-knowledge
// discovery topics. These are hand-authored data, not configuration: new
// topics and keywords are added here without touching the resolver control
// flow. Discovery table order is priority order.

// Intent is a named category bridging a user's phrasing to FAQ or site
// vocabulary that shares no exact words with it.
type Intent struct {
	Key        string
	KeywordsEN []string
	KeywordsAR []string
}

// DiscoveryTopic is a fixed navigational answer with embedded [text](path)
// links, used to route recognizable requests to the right page.
type DiscoveryTopic struct {
	Key        string
	KeywordsEN []string
	KeywordsAR []string
	AnswerEN   string
	AnswerAR   string
}

const intentSupport = "support"

var greetingKeywordsEN = []string{
	"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "greetings",
}

var greetingKeywordsAR = []string{
	"مرحبا", "مرحبًا", "اهلا", "أهلا", "اهلين", "هلا", "السلام عليكم", "صباح الخير", "مساء الخير",
}

var intents = []Intent{
	{
		Key:        "price",
		KeywordsEN: []string{"price", "prices", "pricing", "cost", "fee", "fees", "how much"},
		KeywordsAR: []string{"سعر", "اسعار", "أسعار", "السعر", "تكلفة", "رسوم", "كم سعر", "بكم"},
	},
	{
		Key:        "location",
		KeywordsEN: []string{"location", "address", "where are you", "branch", "directions", "find you"},
		KeywordsAR: []string{"موقع", "الموقع", "عنوان", "العنوان", "فرع", "وين مكان", "اين تقع", "أين تقع"},
	},
	{
		Key:        "hours",
		KeywordsEN: []string{"hours", "opening", "open", "close", "timing", "working hours", "schedule"},
		KeywordsAR: []string{"ساعات", "دوام", "الدوام", "مواعيد", "متى تفتح", "وقت العمل"},
	},
	{
		Key:        "booking",
		KeywordsEN: []string{"book", "booking", "register", "registration", "reservation", "enroll", "sign up"},
		KeywordsAR: []string{"حجز", "احجز", "أحجز", "تسجيل", "سجل", "اشتراك", "اشترك"},
	},
	{
		Key:        "activities",
		KeywordsEN: []string{"activity", "activities", "experiment", "experiments", "science show", "hands-on"},
		KeywordsAR: []string{"نشاط", "انشطة", "أنشطة", "تجربة", "تجارب", "عرض علمي", "فعاليات"},
	},
	{
		Key:        intentSupport,
		KeywordsEN: []string{"support", "help", "agent", "human", "someone", "customer service", "complaint", "contact you", "talk to"},
		KeywordsAR: []string{"دعم", "الدعم", "مساعدة", "موظف", "شكوى", "تواصل", "خدمة العملاء", "اتكلم مع"},
	},
	{
		Key:        "csr",
		KeywordsEN: []string{"csr", "social responsibility", "community", "charity", "donation", "initiative"},
		KeywordsAR: []string{"مسؤولية مجتمعية", "المسؤولية المجتمعية", "مبادرة", "مبادرات", "تبرع", "مجتمع"},
	},
}

var discoveryTopics = []DiscoveryTopic{
	{
		Key:        "services",
		KeywordsEN: []string{"your services", "what do you offer", "what do you do", "do you offer", "what do you provide"},
		KeywordsAR: []string{"خدماتكم", "ماذا تقدمون", "ايش تقدمون", "ماذا تقدم"},
		AnswerEN:   "We run hands-on science programs for kids — workshops, camps, school visits and more. You can browse everything on our [Services](/services) page 🔬",
		AnswerAR:   "نقدم برامج علمية تفاعلية للأطفال — ورش عمل ومخيمات وزيارات مدرسية والمزيد. يمكنك تصفح كل شيء في صفحة [خدماتنا](/services) 🔬",
	},
	{
		Key:        "workshops",
		KeywordsEN: []string{"workshop", "workshops", "program", "session", "class"},
		KeywordsAR: []string{"ورشة", "ورش", "برنامج", "دورة", "حصة"},
		AnswerEN:   "Our weekly science workshops let kids build, mix and experiment themselves. See the current lineup on the [Workshops](/services/workshops) page 🧪",
		AnswerAR:   "ورش العلوم الأسبوعية لدينا تتيح للأطفال البناء والتجربة بأنفسهم. اطلع على الورش الحالية في صفحة [ورش العمل](/services/workshops) 🧪",
	},
	{
		Key:        "camps",
		KeywordsEN: []string{"camp", "camps", "summer", "holiday", "vacation", "program"},
		KeywordsAR: []string{"مخيم", "مخيمات", "صيفي", "الصيف", "اجازة", "إجازة", "برنامج"},
		AnswerEN:   "Our science camps run through school holidays, packed with experiments and projects. Details and dates are on the [Camps](/services/camps) page ⛺",
		AnswerAR:   "مخيماتنا العلمية تقام خلال الإجازات المدرسية، مليئة بالتجارب والمشاريع. التفاصيل والمواعيد في صفحة [المخيمات](/services/camps) ⛺",
	},
	{
		Key:        "about",
		KeywordsEN: []string{"about you", "who are you", "your company", "your story", "your mission", "your team"},
		KeywordsAR: []string{"من انتم", "من أنتم", "عنكم", "قصتكم", "رؤيتكم", "فريقكم"},
		AnswerEN:   "We're a team on a mission to make kids fall in love with science. Read our story on the [About Us](/about) page ✨",
		AnswerAR:   "نحن فريق مهمته أن يجعل الأطفال يعشقون العلوم. اقرأ قصتنا في صفحة [من نحن](/about) ✨",
	},
	{
		Key:        "schools",
		KeywordsEN: []string{"school", "schools", "teacher", "curriculum", "field trip", "classroom"},
		KeywordsAR: []string{"مدرسة", "مدارس", "معلم", "منهج", "رحلة مدرسية", "فصل"},
		AnswerEN:   "We partner with schools to bring science shows and curriculum-linked programs to the classroom. More on the [Schools](/services/schools) page 🏫",
		AnswerAR:   "نتعاون مع المدارس لتقديم عروض علمية وبرامج مرتبطة بالمنهج داخل الفصول. المزيد في صفحة [المدارس](/services/schools) 🏫",
	},
	{
		Key:        "corporate",
		KeywordsEN: []string{"corporate", "company event", "team building", "partnership", "sponsor"},
		KeywordsAR: []string{"شركات", "فعالية شركة", "بناء فريق", "شراكة", "رعاية"},
		AnswerEN:   "We design science-themed events and partnerships for companies. See the [Corporate](/services/corporate) page for what we can build together 🤝",
		AnswerAR:   "نصمم فعاليات وشراكات علمية للشركات. اطلع على صفحة [الشركات](/services/corporate) لما يمكننا بناؤه معًا 🤝",
	},
	{
		Key:        "careers",
		KeywordsEN: []string{"career", "careers", "job", "jobs", "hiring", "vacancy", "work with you", "join your team"},
		KeywordsAR: []string{"وظيفة", "وظائف", "توظيف", "العمل معكم", "انضمام", "شاغر"},
		AnswerEN:   "We're always looking for people who love science and kids! Open roles are listed on the [Careers](/careers) page 🚀",
		AnswerAR:   "نبحث دائمًا عن أشخاص يحبون العلوم والأطفال! الوظائف المتاحة في صفحة [الوظائف](/careers) 🚀",
	},
	{
		Key:        "blog",
		KeywordsEN: []string{"blog", "article", "articles", "news", "something to read"},
		KeywordsAR: []string{"مدونة", "مقال", "مقالات", "اخبار", "أخبار"},
		AnswerEN:   "Our blog is full of experiment ideas and science news for families. Have a look at the [Blog](/blog) page 📚",
		AnswerAR:   "مدونتنا مليئة بأفكار التجارب وأخبار العلوم للعائلات. ألقِ نظرة على صفحة [المدونة](/blog) 📚",
	},
	{
		Key:        "csr",
		KeywordsEN: []string{"csr", "social responsibility", "community", "initiative", "charity", "giving back"},
		KeywordsAR: []string{"مسؤولية مجتمعية", "المسؤولية المجتمعية", "مبادرة", "مبادرات", "مجتمع", "تبرع"},
		AnswerEN:   "We bring free science programs to communities that need them most. Learn about our initiatives on the [CSR](/csr) page 💙",
		AnswerAR:   "نقدم برامج علمية مجانية للمجتمعات الأكثر حاجة. تعرف على مبادراتنا في صفحة [المسؤولية المجتمعية](/csr) 💙",
	},
}

// bilingual holds one canned reply in both languages.
type bilingual struct {
	EN string
	AR string
}

func (b bilingual) text(arabic bool) string {
	if arabic {
		return b.AR
	}
	return b.EN
}

var greetingReply = bilingual{
	EN: "Hello! 👋 Welcome to Bright Labs. How can I help you today?",
	AR: "مرحبًا! 👋 أهلًا بك في برايت لابس. كيف أقدر أساعدك اليوم؟",
}

var supportReply = bilingual{
	EN: "Of course! Our team would love to help you directly. Tap the button below to reach us 💬",
	AR: "بالتأكيد! فريقنا يسعده مساعدتك مباشرة. اضغط الزر بالأسفل للتواصل معنا 💬",
}

var fallbackSupportReply = bilingual{
	EN: "Hmm, I'm not sure I got that — but our team is online right now and can help. Tap the button below to talk to us 💬",
	AR: "لم أفهم سؤالك تمامًا — لكن فريقنا متواجد الآن ويسعده مساعدتك. اضغط الزر بالأسفل للتحدث معنا 💬",
}

// outOfHoursReply takes the 12-hour display forms of the opening and closing hours.
var outOfHoursReply = bilingual{
	EN: "Sorry, our team is currently away 😴 We're available daily from %s to %s — please try again then, or leave your question here!",
	AR: "عذرًا، فريقنا غير متواجد حاليًا 😴 نحن متاحون يوميًا من %s إلى %s — حاول مرة أخرى حينها، أو اترك سؤالك هنا!",
}
