// Package content holds the static, immutable course material for
// PSY 211 (dynamic psychology and measurement theories). The tables are
// pure data; augmentation never mutates them.
package content

import "psy211-course-service/internal/domain"

// Course is the course-level metadata shown on the home screen.
func Course() domain.CourseInfo {
	return domain.CourseInfo{
		Name:        "علم النفس الدينامي ونظريات القياس",
		Code:        "PSY 211",
		University:  "جامعة العريش",
		Faculty:     "كلية الآداب - قسم علم النفس",
		Level:       "المستوى الأول / الثاني",
		Hours:       "3 نظري + 1 عملي",
		Coordinator: "د. أحمد حمدي عاشور الغول",
		Objectives: []string{
			"فهم السلوك الإنساني كنشاط كلي غائي يهدف للتكيف مع البيئة الصحراوية والساحلية في سيناء.",
			"التمييز بين المدارس النفسية الكبرى وتطورها التاريخي من البنيوية إلى التحليل النفسي المعاصر.",
			"إتقان مناهج البحث العلمي (تجريبي، عيادي، وصفي) وتطبيقاتها في مجتمع العريش وبئر العبد.",
			"تحليل الدوافع والانفعالات الإنسانية وتأثير الضغوط الأمنية والاقتصادية على الصحة النفسية.",
			"إتقان مبادئ القياس النفسي وبناء الاختبارات التي تراعي الخصوصية الثقافية للمجتمعات القبلية.",
			"تطوير مهارات التكيف النفسي وآليات الدفاع في مواجهة الأزمات المجتمعية.",
		},
		References: []string{
			"أحمد عزت راجح: أصول علم النفس (دار المعارف)",
			"سيجموند فرويد: مقدمة في التحليل النفسي (ترجمة محمد عثمان نجاتي)",
			"أبراهام ماسلو: الدافعية والشخصية",
			"سيجموند فرويد: موجز التحليل النفسي",
		},
	}
}

// Units returns the five course units in order. Callers must treat the
// result as read-only.
func Units() []domain.UnitData {
	return []domain.UnitData{unit1(), unit2(), unit3(), unit4(), unit5()}
}

func unit1() domain.UnitData {
	return domain.UnitData{
		ID:      1,
		Title:   "المدخل إلى علم النفس ومناهجه",
		Summary: "تعريف العلم، تطوره التاريخي، مدارسه الكبرى، ومناهجه التطبيقية في البيئة السيناوية.",
		Objectives: []string{
			"تحليل مدارس علم النفس",
			"إتقان البحث الميداني",
			"فهم السلوك الغائي",
		},
		WeeklyPlan: []domain.WeeklyPlanEntry{
			{Week: 1, Topic: "موضوع علم النفس وفروعه", Activity: "نقاش حول الشخصية السيناوية", LocalExample: "جامعة العريش"},
			{Week: 2, Topic: "المدارس النفسية", Activity: "تجربة استبطان عملية", LocalExample: "وصف مشاعر الغربة"},
			{Week: 3, Topic: "مناهج البحث", Activity: "تصميم تجربة بسيطة", LocalExample: "سوق الخميس بالعريش"},
		},
		Glossary: []domain.GlossaryTerm{
			{
				TermAr:       "علم النفس",
				TermEn:       "Psychology",
				Definition:   "الدراسة العلمية للسلوك رداً على مختلف المثيرات.",
				Theory:       "استقل عن الفلسفة مع ووندت 1879. يركز راجح على شمولية السلوك كنشاط كلي.",
				LocalExample: "دراسة انفعالات طلاب العريش وقت سماع أصوات الرياح العاتية في الصحراء.",
				Impact:       "تحسين الوعي الذاتي والتحكم في ردود الفعل الفجائية.",
				Application:  "ورش عمل 'اعرف نفسك' للطلاب الجدد بمركز الشباب بالعريش.",
			},
		},
		Questions: []domain.Question{
			{
				ID: "u1-q1", Unit: 1,
				Text:    "في أي عام استقل علم النفس عن الفلسفة على يد ووندت؟",
				Options: []string{"1859", "1879", "1900", "1923"},
				Answer:  "1879",
				Explanation: domain.Explanation{
					Theory:          "أسس ووندت أول معمل لعلم النفس التجريبي في لايبزج عام 1879.",
					DetailedExample: "قبل هذا التاريخ كانت موضوعات النفس تدرس ضمن الفلسفة.",
					Implications:    "تحول دراسة السلوك إلى منهج تجريبي قابل للقياس.",
					Applications:    "بناء معامل علم النفس في الجامعات المصرية.",
				},
			},
			{
				ID: "u1-q2", Unit: 1,
				Text:    "ما المنهج الذي تعتمد عليه المدرسة البنيوية في دراسة الشعور؟",
				Options: []string{"الملاحظة الخارجية", "الاستبطان", "التجريب المعملي", "دراسة الحالة"},
				Answer:  "الاستبطان",
				Explanation: domain.Explanation{
					Theory:          "الاستبطان هو تأمل الفرد لخبراته الشعورية الداخلية ووصفها.",
					DetailedExample: "وصف طالب لمشاعر الغربة عند انتقاله من نخل إلى العريش.",
					Implications:    "انتقد لاحقاً لذاتيته وصعوبة التحقق منه.",
					Applications:    "تمارين الوعي الذاتي في الإرشاد الطلابي.",
				},
			},
			{
				ID: "u1-q3", Unit: 1,
				Text:    "أي منهج يناسب دراسة حالة فردية تعاني صعوبات تكيف؟",
				Options: []string{"المنهج التجريبي", "المنهج الوصفي", "المنهج العيادي", "المنهج المقارن"},
				Answer:  "المنهج العيادي",
				Explanation: domain.Explanation{
					Theory:          "المنهج العيادي يتعمق في دراسة الحالة الواحدة بتاريخها وظروفها.",
					DetailedExample: "دراسة حالة طالب يعاني الغربة الداخلية بعد انتقاله للمدينة.",
					Implications:    "يوفر فهماً عميقاً لكنه لا يسمح بالتعميم المباشر.",
					Applications:    "العيادات النفسية الجامعية بالعريش.",
				},
			},
			{
				ID: "u1-q4", Unit: 1,
				Text:    "يصف راجح السلوك الإنساني بأنه نشاط:",
				Options: []string{"جزئي عشوائي", "كلي غائي", "انعكاسي بحت", "فطري ثابت"},
				Answer:  "كلي غائي",
				Explanation: domain.Explanation{
					Theory:          "السلوك كلٌ متكامل يصدر عن الفرد بأكمله ويتجه نحو غاية.",
					DetailedExample: "مذاكرة الطالب ليلاً سلوك كلي غايته النجاح والتكيف.",
					Implications:    "رفض تفتيت السلوك إلى عناصر منفصلة.",
					Applications:    "تحليل سلوك الطلاب في ضوء أهدافهم الكلية.",
				},
			},
		},
		Cases: []domain.CaseStudy{
			{
				ID:          "u1-c1",
				Scenario:    "طالب من 'نخل' يجد صعوبة في التكيف مع ضوضاء مدينة العريش وازدحام الجامعة. يصف لزميله إحساساً بـ 'الغربة الداخلية'.",
				Questions:   []string{"ما المنهج النفسي المناسب لدراسة حالته؟"},
				TargetSkill: "التحليل المنهجي للسلوك",
				ExpertAnalysis: domain.ExpertAnalysis{
					Theory:            "المنهج المطلوب هو 'الاستبطان' التابع للمدرسة البنيوية.",
					LocalInsight:      "التحول البيئي يتطلب إعادة تنظيم إدراكي.",
					PracticalSolution: "تطبيق تقنيات إزالة الحساسية التدريجي.",
				},
			},
		},
		Assessment: []domain.AssessmentEntry{{Method: "ميدتيرم", Weight: 20}},
	}
}

func unit2() domain.UnitData {
	return domain.UnitData{
		ID:      2,
		Title:   "دوافع السلوك والانفعالات في السياق المحلي",
		Summary: "تحليل محركات السلوك، هرم ماسلو، وانفعالات الخوف والقلق تحت الضغوط.",
		Objectives: []string{
			"فهم الدوافع",
			"إدارة ضغوط الحياة",
			"تطبيق هرم ماسلو",
		},
		WeeklyPlan: []domain.WeeklyPlanEntry{
			{Week: 4, Topic: "دوافع السلوك", Activity: "تحليل هرم ماسلو", LocalExample: "بئر العبد"},
			{Week: 5, Topic: "الانفعالات", Activity: "تمارين إدارة القلق", LocalExample: "الشيخ زويد"},
		},
		Glossary: []domain.GlossaryTerm{
			{
				TermAr:       "الدافع",
				TermEn:       "Motive",
				Definition:   "حالة داخلية تثير السلوك وتوجهه نحو هدف معين.",
				Theory:       "الدافعية هي محرك السلوك (Drive). تفرق بين الدوافع الفطرية والمكتسبة.",
				LocalExample: "إصرار طالب من 'نخل' على المذاكرة في ظروف صعبة لتحقيق حلم التخرج.",
				Impact:       "زيادة المثابرة وتحمل المشاق.",
				Application:  "تطبيقات 'تحديد الأهداف' لمساعدة الطلاب.",
			},
		},
		Questions: []domain.Question{
			{
				ID: "u2-q1", Unit: 2,
				Text:    "أعلى مستويات هرم ماسلو للحاجات هو:",
				Options: []string{"الحاجات الفسيولوجية", "الحاجة للأمن", "تقدير الذات", "تحقيق الذات"},
				Answer:  "تحقيق الذات",
				Explanation: domain.Explanation{
					Theory:          "يتدرج الهرم من الحاجات الفسيولوجية إلى تحقيق الذات في القمة.",
					DetailedExample: "شاب يفتتح مشروعاً بيئياً رغم الإحباطات المادية.",
					Implications:    "لا يسعى الفرد للقمة قبل إشباع القاعدة نسبياً.",
					Applications:    "برامج تحفيز الطلاب على المشروعات الريادية.",
				},
			},
			{
				ID: "u2-q2", Unit: 2,
				Text:    "الفرق الجوهري بين الخوف والقلق أن القلق:",
				Options: []string{"أقصر مدة", "مصدره غامض وغير محدد", "استجابة لمثير خارجي واضح", "انفعال سار"},
				Answer:  "مصدره غامض وغير محدد",
				Explanation: domain.Explanation{
					Theory:          "الخوف استجابة لخطر محدد، بينما القلق توقع خطر غامض.",
					DetailedExample: "قلق طالب قبل الامتحان دون تهديد مباشر حاضر.",
					Implications:    "القلق المزمن يستنزف الطاقة النفسية.",
					Applications:    "تمارين الاسترخاء وإدارة قلق الامتحانات.",
				},
			},
			{
				ID: "u2-q3", Unit: 2,
				Text:    "دافع العطش مثال على الدوافع:",
				Options: []string{"الفطرية", "المكتسبة", "الاجتماعية", "اللاشعورية"},
				Answer:  "الفطرية",
				Explanation: domain.Explanation{
					Theory:          "الدوافع الفطرية يولد بها الفرد ولا تحتاج تعلماً.",
					DetailedExample: "حاجة المسافر في صحراء سيناء للماء.",
					Implications:    "إحباط الدوافع الفطرية يهدد التوازن الجسمي.",
					Applications:    "مراعاة الحاجات الأساسية قبل المطالب الدراسية.",
				},
			},
		},
		Cases: []domain.CaseStudy{
			{
				ID:          "u2-c1",
				Scenario:    "شاب من بئر العبد يسعى بكل قوته لافتتاح مشروع لتدوير المخلفات البيئية في مدينته رغم الإحباطات المادية.",
				Questions:   []string{"حدد نوع الدافع وفق هرم ماسلو."},
				TargetSkill: "تحليل الدوافع العليا",
				ExpertAnalysis: domain.ExpertAnalysis{
					Theory:            "يتحرك الشاب بدافع 'تحقيق الذات'.",
					LocalInsight:      "التحديات البيئية تخلق دوافع ابتكارية قوية.",
					PracticalSolution: "تعزيز دافع الإنجاز من خلال الدعم الاجتماعي.",
				},
			},
		},
		Assessment: []domain.AssessmentEntry{{Method: "تقرير", Weight: 10}},
	}
}

func unit3() domain.UnitData {
	return domain.UnitData{
		ID:      3,
		Title:   "العمليات المعرفية والتعلم",
		Summary: "دراسة الإدراك، الانتباه، الذاكرة، ونظريات التعلم (بافلوف، ثورندايك، سكينر).",
		Objectives: []string{
			"شرح قوانين الإدراك",
			"تطبيق نظريات التعلم",
			"فهم الذاكرة",
		},
		WeeklyPlan: []domain.WeeklyPlanEntry{
			{Week: 6, Topic: "الإدراك", Activity: "تجارب الخداع البصري", LocalExample: "طريق القنطرة"},
			{Week: 7, Topic: "التعلم", Activity: "برامج تعديل سلوك", LocalExample: "مدارس العريش"},
		},
		Glossary: []domain.GlossaryTerm{
			{
				TermAr:       "الإغلاق",
				TermEn:       "Closure",
				Definition:   "ميل الفرد لإدراك المثيرات غير المكتملة كأشكال كاملة.",
				Theory:       "قانون من قوانين مدرسة الجشطلت للتنظيم الإدراكي.",
				LocalExample: "إدراك شكل الجمل البعيد في الصحراء رغم الغبار.",
				Impact:       "سرعة التفسير البيئي للمواقف الغامضة.",
				Application:  "تطوير مهارات القراءة السريعة.",
			},
		},
		Questions: []domain.Question{
			{
				ID: "u3-q1", Unit: 3,
				Text:    "صاحب تجربة الاشتراط الكلاسيكي على الكلاب هو:",
				Options: []string{"ثورندايك", "بافلوف", "سكينر", "ماسلو"},
				Answer:  "بافلوف",
				Explanation: domain.Explanation{
					Theory:          "اقترن الجرس بالطعام حتى أصبح وحده مثيراً للعاب.",
					DetailedExample: "ارتباط صوت جرس المدرسة بوقت الاستراحة لدى التلاميذ.",
					Implications:    "الانفعالات قد تكتسب بالاشتراط نفسه.",
					Applications:    "علاج المخاوف المكتسبة بفك الاقتران.",
				},
			},
			{
				ID: "u3-q2", Unit: 3,
				Text:    "الذاكرة التي تحتفظ بالأحداث الانفعالية الكبرى بتفاصيل حية تسمى:",
				Options: []string{"الذاكرة الحسية", "الذاكرة العاملة", "الذاكرة الوميضية", "ذاكرة المعاني"},
				Answer:  "الذاكرة الوميضية",
				Explanation: domain.Explanation{
					Theory:          "الشحنة الانفعالية تعمق ترسيخ الحدث في الذاكرة طويلة المدى.",
					DetailedExample: "تذكر سارة تفاصيل رحلتها لرفح منذ عشر سنوات بدقة.",
					Implications:    "الانفعال عامل حاسم في التذكر والاسترجاع.",
					Applications:    "الربط الوجداني لتحسين المذاكرة.",
				},
			},
			{
				ID: "u3-q3", Unit: 3,
				Text:    "قانون الأثر عند ثورندايك يعني أن السلوك يتقوى إذا:",
				Options: []string{"تكرر بلا نتيجة", "أعقبه أثر مرضٍ", "سبقه مثير محايد", "صاحبه عقاب"},
				Answer:  "أعقبه أثر مرضٍ",
				Explanation: domain.Explanation{
					Theory:          "الارتباطات التي يتبعها إشباع تتقوى، والتي يتبعها ضيق تضعف.",
					DetailedExample: "مدح المعلم لتلميذ أجاب صواباً يزيد مشاركته.",
					Implications:    "أساس مبدأ التعزيز عند سكينر لاحقاً.",
					Applications:    "برامج تعديل السلوك في مدارس العريش.",
				},
			},
		},
		Cases: []domain.CaseStudy{
			{
				ID:          "u3-c1",
				Scenario:    "سارة تتذكر تفاصيل رحلتها لرفح منذ 10 سنوات بدقة، بينما تنسى أحياناً ما درسته بالأمس.",
				Questions:   []string{"فسر هذا التباين في ضوء أنواع الذاكرة."},
				TargetSkill: "فهم آليات الذاكرة",
				ExpertAnalysis: domain.ExpertAnalysis{
					Theory:            "رحلة رفح مخزنة في 'الذاكرة الوميضية' المرتبطة بالانفعالات.",
					LocalInsight:      "الأحداث الكبرى في سيناء تترك بصمات ذاكرة عميقة.",
					PracticalSolution: "استخدام الربط الوجداني لتحسين الاسترجاع.",
				},
			},
		},
		Assessment: []domain.AssessmentEntry{{Method: "عملي", Weight: 10}},
	}
}

func unit4() domain.UnitData {
	return domain.UnitData{
		ID:      4,
		Title:   "الشخصية والتكيف النفسي",
		Summary: "بناء الشخصية، آليات الدفاع اللاشعورية، ومعايير السواء واللاسواء في المجتمع القبلي.",
		Objectives: []string{
			"كشف آليات الدفاع",
			"تحليل الصراعات",
			"تطوير التكيف",
		},
		WeeklyPlan: []domain.WeeklyPlanEntry{
			{Week: 8, Topic: "بناء الشخصية", Activity: "تحليل صراعات الأنا", LocalExample: "مجتمعات البادية"},
			{Week: 9, Topic: "التكيف النفسي", Activity: "دراسة حالات الصمود", LocalExample: "رفح"},
		},
		Glossary: []domain.GlossaryTerm{
			{
				TermAr:       "الإسقاط",
				TermEn:       "Projection",
				Definition:   "حيلة دفاعية ينسب فيها الفرد عيوبه أو رغباته للآخرين.",
				Theory:       "ميكانيزم دفاعي لاشعوري عند سيجموند فرويد لحماية الأنا.",
				LocalExample: "طالب فاشل يتهم زملاءه بالكسل وإهمال المذاكرة.",
				Impact:       "تجنب الشعور بالذنب بشكل مؤقت.",
				Application:  "الإرشاد النفسي لمواجهة الحقيقة.",
			},
		},
		Questions: []domain.Question{
			{
				ID: "u4-q1", Unit: 4,
				Text:    "الجهاز النفسي الذي يعمل وفق مبدأ الواقع عند فرويد هو:",
				Options: []string{"الهو", "الأنا", "الأنا الأعلى", "اللاشعور"},
				Answer:  "الأنا",
				Explanation: domain.Explanation{
					Theory:          "الأنا وسيط بين مطالب الهو وضوابط الأنا الأعلى وظروف الواقع.",
					DetailedExample: "تأجيل طالب للترفيه حتى ينتهي من الامتحانات.",
					Implications:    "ضعف الأنا يفتح الباب للصراع والقلق.",
					Applications:    "تقوية مهارات ضبط الذات لدى المراهقين.",
				},
			},
			{
				ID: "u4-q2", Unit: 4,
				Text:    "موظف ينسب فشله في الترقية لاضطهاد مديره بدلاً من ضعف أدائه. الميكانيزم هو:",
				Options: []string{"الكبت", "التسامي", "الإسقاط", "النكوص"},
				Answer:  "الإسقاط",
				Explanation: domain.Explanation{
					Theory:          "الإسقاط ينسب العيوب الداخلية لمصدر خارجي حمايةً للأنا.",
					DetailedExample: "طالب راسب يتهم المصحح بالظلم.",
					Implications:    "الإفراط فيه يشوه إدراك الواقع.",
					Applications:    "جلسات العلاج المعرفي لرفع المسؤولية الشخصية.",
				},
			},
			{
				ID: "u4-q3", Unit: 4,
				Text:    "تحويل الطاقة العدوانية إلى نشاط رياضي مقبول اجتماعياً مثال على:",
				Options: []string{"التبرير", "التسامي", "الإنكار", "التقمص"},
				Answer:  "التسامي",
				Explanation: domain.Explanation{
					Theory:          "التسامي يصرف الدوافع المرفوضة في قنوات يقبلها المجتمع.",
					DetailedExample: "شاب غاضب يفرغ طاقته في تدريبات كرة القدم بمركز شباب العريش.",
					Implications:    "أنضج الحيل الدفاعية وأكثرها بناءً.",
					Applications:    "الأنشطة الرياضية والفنية في الجامعة.",
				},
			},
		},
		Cases: []domain.CaseStudy{
			{
				ID:          "u4-c1",
				Scenario:    "موظف ينسب فشله في الترقية لـ 'الحظ السيئ' أو 'اضطهاد المدير' بدلاً من ضعف أدائه.",
				Questions:   []string{"حدد ميكانيزم الدفاع المستخدم."},
				TargetSkill: "كشف آليات التبرير",
				ExpertAnalysis: domain.ExpertAnalysis{
					Theory:            "هذا هو 'التبرير' والإسقاط لحماية احترام الذات.",
					LocalInsight:      "ضغوط العمل قد تزيد من اللجوء لهذه الحيل.",
					PracticalSolution: "جلسات العلاج المعرفي لرفع مستوى المسؤولية الشخصية.",
				},
			},
		},
		Assessment: []domain.AssessmentEntry{{Method: "مشاركة", Weight: 10}},
	}
}

func unit5() domain.UnitData {
	return domain.UnitData{
		ID:      5,
		Title:   "نظريات القياس في علم النفس الدينامي",
		Summary: "الصدق، الثبات، اختبارات الذكاء، والاختبارات الإسقاطية وتطبيقها ميدانياً.",
		Objectives: []string{
			"حساب الصدق والثبات",
			"تطبيق مقاييس الذكاء",
			"أخلاقيات القياس",
		},
		WeeklyPlan: []domain.WeeklyPlanEntry{
			{Week: 10, Topic: "مبادئ القياس", Activity: "تطبيق استبيان", LocalExample: "كلية الآداب"},
			{Week: 11, Topic: "الاختبارات الإسقاطية", Activity: "تحليل قصص TAT", LocalExample: "عيادات العريش"},
		},
		Glossary: []domain.GlossaryTerm{
			{
				TermAr:       "الصدق",
				TermEn:       "Validity",
				Definition:   "مدى قدرة الاختبار على قياس ما وضع لقياسه فعلاً.",
				Theory:       "أهم شرط في الاختبار النفسي الجيد؛ يضمن عدالة القياس.",
				LocalExample: "اختبار ذكاء يقيس القدرات العقلية للطلاب السيناويين فعلاً.",
				Impact:       "دقة التشخيص النفسي والتربوي.",
				Application:  "بناء اختبارات تحصيلية دقيقة بالجامعة.",
			},
		},
		Questions: []domain.Question{
			{
				ID: "u5-q1", Unit: 5,
				Text:    "إذا أعطى الاختبار النتائج نفسها عند إعادة تطبيقه فهو يتمتع بـ:",
				Options: []string{"الصدق", "الثبات", "الموضوعية", "الشمول"},
				Answer:  "الثبات",
				Explanation: domain.Explanation{
					Theory:          "الثبات هو اتساق الدرجات عبر مرات التطبيق المتكررة.",
					DetailedExample: "اختبار ذكاء يعطي درجات متقاربة للطالب نفسه بعد أسبوعين.",
					Implications:    "اختبار صادق لا بد أن يكون ثابتاً، والعكس غير لازم.",
					Applications:    "معايرة الاختبارات التحصيلية بكلية الآداب.",
				},
			},
			{
				ID: "u5-q2", Unit: 5,
				Text:    "اختبار تفهم الموضوع TAT يصنف ضمن الاختبارات:",
				Options: []string{"الموضوعية", "الإسقاطية", "التحصيلية", "الأدائية"},
				Answer:  "الإسقاطية",
				Explanation: domain.Explanation{
					Theory:          "يعرض صوراً غامضة فيسقط المفحوص صراعاته في قصصه عنها.",
					DetailedExample: "تحليل قصص المفحوصين في عيادات العريش.",
					Implications:    "يكشف الدينامية اللاشعورية للشخصية.",
					Applications:    "التشخيص العيادي المتعمق.",
				},
			},
			{
				ID: "u5-q3", Unit: 5,
				Text:    "اختبار ذكاء مترجم يتحدث عن 'المصاعد' يطبق على أطفال البادية يفتقر إلى:",
				Options: []string{"الثبات الزمني", "الصدق الثقافي", "الموضوعية", "سهولة التصحيح"},
				Answer:  "الصدق الثقافي",
				Explanation: domain.Explanation{
					Theory:          "بنود الاختبار يجب أن تعكس خبرة البيئة المقاس فيها.",
					DetailedExample: "طفل البادية لم ير مصعداً فيخفق في بند لا يقيس ذكاءه.",
					Implications:    "نتائج مضللة وقرارات تربوية ظالمة.",
					Applications:    "تعديل الفقرات لتناسب الخبرة السيناوية.",
				},
			},
		},
		Cases: []domain.CaseStudy{
			{
				ID:          "u5-c1",
				Scenario:    "باحث يريد تطبيق اختبار ذكاء مترجم يتحدث عن 'المصاعد' و'إشارات المرور' على أطفال في عمق البادية.",
				Questions:   []string{"ما المشكلة التي تواجه 'صدق' هذا الاختبار؟"},
				TargetSkill: "تحقيق الصدق الثقافي",
				ExpertAnalysis: domain.ExpertAnalysis{
					Theory:            "الاختبار يفتقر لـ 'الصدق الثقافي' والبيئي.",
					LocalInsight:      "الذكاء في البادية يرتبط بمهارات بيئية مختلفة.",
					PracticalSolution: "تعديل الفقرات الاختبارية لتناسب الخبرة السيناوية.",
				},
			},
		},
		Assessment: []domain.AssessmentEntry{{Method: "نهائي", Weight: 60}},
	}
}
