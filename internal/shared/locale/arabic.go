package locale

var arabic = map[string]string{
	MsgGenericError:  "❌ حدث خطأ في معالجة الأمر",
	MsgRateLimited:   "⚠️ تم تجاوز الحد المسموح من الأوامر. يرجى الانتظار دقيقة.",
	MsgAdminOnly:     "❌ هذا الأمر متاح للمشرفين فقط",
	MsgGroupOnly:     "❌ هذا الأمر متاح في المجموعات فقط",
	MsgQuoteRequired: "❌ يرجى الرد على رسالة لاستخدام هذا الأمر",
	MsgMediaRequired: "❌ يرجى إرفاق صورة مع الأمر",
	MsgUsage:         "❌ الاستخدام: {{.Usage}}",
	MsgLinkBlocked:   "🚫 الروابط غير مسموحة في هذه المجموعة",
	MsgReminder:      "🔔 تذكير: {{.Text}}",
	MsgWelcome:       "🎉 {{.Text}}",

	MsgHelpHeader: "🤖 *أوامر البوت المتاحة:*",
	MsgStatus:     "🤖 *حالة البوت:*\n• الحالة: {{.State}}\n• الاسم: {{.Name}}\n• الرقم: {{.ID}}\n• المنصة: {{.Platform}}\n• الرسائل المجدولة: {{.Scheduled}}\n• التذكيرات: {{.Reminders}}\n• الاستطلاعات النشطة: {{.Polls}}",
	MsgConnected:  "متصل ✅",
	MsgOffline:    "غير مرتبط ❌",
	MsgInfo:       "🤖 *معلومات البوت:*\n📱 الاسم: {{.Name}}\n🔢 الرقم: {{.ID}}\n💻 المنصة: {{.Platform}}\n🔗 الحالة: {{.State}}\n⚡ طريقة الربط: {{.Method}}\n🔑 آخر كود ربط: {{.Code}}\n📱 رقم الربط: {{.Phone}}\n🕐 وقت التشغيل: {{.Minutes}} دقيقة",
	MsgNewCode:    "🔑 كود ربط جديد: {{.Code}}\n\n📋 لاستخدام الكود:\n1. اذهب للإعدادات\n2. الأجهزة المرتبطة\n3. ربط جهاز\n4. ربط برقم الهاتف\n5. أدخل: {{.Code}}",
	MsgNotSet:     "غير محدد",

	MsgChangeNameOK:     "✅ تم تغيير اسم البوت إلى: {{.Name}}",
	MsgChangeNameFailed: "❌ فشل في تغيير الاسم",
	MsgProfilePicOK:     "✅ تم تغيير صورة الملف الشخصي",
	MsgProfilePicFailed: "❌ فشل في تغيير صورة الملف الشخصي",
	MsgWeather:          "🌤️ الطقس في {{.City}}: مشمس، 25°C\n💨 الرياح: 10 كم/س\n💧 الرطوبة: 60%",
	MsgTranslate:        "[ترجمة إلى {{.Lang}}]: {{.Text}}",
	MsgRock:             "🎮 أنت: {{.User}}\n🤖 البوت: {{.Bot}}\n{{.Result}}",
	MsgRockRock:         "حجر",
	MsgRockPaper:        "ورقة",
	MsgRockScissors:     "مقص",
	MsgRockDraw:         "تعادل!",
	MsgRockWin:          "فزت!",
	MsgRockLose:         "خسرت!",
	MsgGroupNameOK:      "✅ تم تغيير اسم المجموعة إلى: {{.Name}}",
	MsgGroupNameFailed:  "❌ فشل في تغيير اسم المجموعة",
	MsgGroupPicOK:       "✅ تم تغيير صورة المجموعة",
	MsgGroupPicFailed:   "❌ فشل في تغيير صورة المجموعة",
	MsgGroupDescOK:      "✅ تم تغيير وصف المجموعة",
	MsgGroupDescFailed:  "❌ فشل في تغيير وصف المجموعة",
	MsgPromoteOK:        "✅ تم ترقية {{.Target}} لمشرف",
	MsgPromoteFailed:    "❌ فشل في ترقية العضو",
	MsgDemoteOK:         "✅ تم تنزيل {{.Target}} من الإشراف",
	MsgDemoteFailed:     "❌ فشل في تنزيل المشرف",
	MsgKickOK:           "✅ تم طرد {{.Target}}",
	MsgKickFailed:       "❌ فشل في طرد العضو",
	MsgMentionAllHeader: "📢 منشن جماعي:",
	MsgMentionAllFailed: "❌ فشل في المنشن الجماعي",
	MsgPinOK:            "✅ تم تثبيت الرسالة",
	MsgPinFailed:        "❌ فشل في تثبيت الرسالة",
	MsgUnpinOK:          "✅ تم إلغاء تثبيت الرسالة",
	MsgUnpinFailed:      "❌ فشل في إلغاء التثبيت",
	MsgCleanupOK:        "✅ تم طرد {{.Count}} عضو غير نشط",
	MsgCleanupFailed:    "❌ فشل في التصفية",
	MsgInactiveHeader:   "🗿 الأصنام (غير نشطين):",
	MsgInactiveNone:     "✅ جميع الأعضاء نشطين!",
	MsgInactiveFailed:   "❌ فشل في عرض الأصنام",
	MsgStats:            "📊 *إحصائيات المجموعة:*\n👥 إجمالي الأعضاء: {{.Total}}\n👑 المشرفين: {{.Admins}}\n👤 الأعضاء: {{.Members}}\n📅 تاريخ الإنشاء: {{.Created}}",
	MsgStatsFailed:      "❌ فشل في عرض الإحصائيات",
	MsgWelcomeSet:       "✅ تم تعيين رسالة الترحيب",
	MsgRulesSet:         "✅ تم حفظ قواعد المجموعة",
	MsgRulesShow:        "📋 *قواعد المجموعة:*\n{{.Rules}}",
	MsgRulesNone:        "❌ لم يتم تعيين قواعد للمجموعة",
	MsgWarn:             "⚠️ تم إعطاء تحذير لـ {{.Target}}\nعدد التحذيرات: {{.Count}}/{{.Threshold}}",
	MsgWarnKicked:       "🚫 تم طرد {{.Target}} بعد {{.Threshold}} تحذيرات",
	MsgWarnKickFailed:   "❌ فشل في طرد العضو",
	MsgWarnings:         "⚠️ عدد تحذيرات {{.Target}}: {{.Count}}/{{.Threshold}}",
	MsgMuted:            "🔇 تم كتم {{.Target}} لمدة {{.Minutes}} دقيقة",
	MsgScheduled:        "⏰ تم جدولة الرسالة للساعة {{.Time}}",
	MsgReminderSet:      "⏰ تم تعيين تذكير للساعة {{.Time}}",
	MsgInvalidTime:      "❌ وقت غير صالح، استخدم HH:MM",
	MsgPollCreated:      "📊 *استطلاع رأي:*\n{{.Question}}\n\nللتصويت:\n✅ {{.Prefix}}نعم {{.ID}}\n❌ {{.Prefix}}لا {{.ID}}",
	MsgVoteYes:          "✅ تم تسجيل صوتك: نعم",
	MsgVoteNo:           "❌ تم تسجيل صوتك: لا",
	MsgAlreadyVoted:     "❌ لقد صوتت مسبقاً",
	MsgResults:          "📊 *نتائج الاستطلاع:*\n{{.Question}}\n\n✅ نعم: {{.Yes}} ({{.YesPercent}}%)\n❌ لا: {{.No}} ({{.NoPercent}}%)\n\nإجمالي الأصوات: {{.Total}}",
	MsgAntiSpamOn:       "✅ تم تفعيل مكافحة السبام",
	MsgAntiSpamOff:      "❌ تم إلغاء مكافحة السبام",
	MsgLinkFilterOn:     "✅ تم تفعيل فلترة الروابط",
	MsgLinkFilterOff:    "❌ تم إلغاء فلترة الروابط",
	MsgCleanOK:          "✅ تم حذف {{.Count}} رسالة",
	MsgCleanTooMany:     "❌ لا يمكن حذف أكثر من {{.Max}} رسالة في المرة الواحدة",
	MsgCleanFailed:      "❌ فشل في حذف الرسائل",

	"help.help":             "عرض هذه الرسالة",
	"help.status":           "حالة البوت",
	"help.info":             "معلومات البوت",
	"help.newcode":          "توليد كود ربط جديد",
	"help.changename":       "تغيير اسم البوت",
	"help.changeprofilepic": "تغيير صورة البوت (مع الصورة)",
	"help.weather":          "معلومات الطقس",
	"help.translate":        "ترجمة (بالرد على رسالة)",
	"help.rock":             "لعبة حجر ورقة مقص",
	"help.changegroupname":  "تغيير اسم المجموعة",
	"help.changegrouppic":   "تغيير صورة المجموعة (مع الصورة)",
	"help.changegroupdesc":  "تغيير وصف المجموعة",
	"help.promote":          "ترقية لمشرف (بالرد أو ذكر الرقم)",
	"help.demote":           "تنزيل من الإشراف",
	"help.kick":             "طرد عضو",
	"help.mentionall":       "منشن جماعي",
	"help.pin":              "تثبيت رسالة (بالرد)",
	"help.unpin":            "إلغاء تثبيت",
	"help.cleanup":          "طرد غير النشطين",
	"help.inactive":         "عرض غير النشطين",
	"help.stats":            "إحصائيات المجموعة",
	"help.welcome":          "تعيين رسالة ترحيب، {user} للعضو الجديد",
	"help.rules":            "حفظ قواعد المجموعة",
	"help.showrules":        "عرض القواعد",
	"help.warn":             "إعطاء تحذير (بالرد)",
	"help.warnings":         "عرض تحذيرات العضو (بالرد)",
	"help.mute":             "كتم مؤقت (بالرد)",
	"help.schedule":         "جدولة رسالة",
	"help.remind":           "تعيين تذكير",
	"help.poll":             "إنشاء استطلاع",
	"help.yes":              "التصويت بنعم",
	"help.no":               "التصويت بلا",
	"help.results":          "عرض النتائج",
	"help.antispam":         "تفعيل/إلغاء مكافحة السبام",
	"help.linkfilter":       "تفعيل/إلغاء فلترة الروابط",
	"help.clean":            "حذف آخر رسائل المجموعة",
}
