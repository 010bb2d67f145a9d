package service

// commands is the declarative command table. Admin requirements come from
// configuration and are applied in New.
func (d *Dispatcher) commands() []*Command {
	return []*Command{
		{Name: "help", Aliases: []string{"مساعدة"}, NoArgs: true, Handler: d.handleHelp},
		{Name: "status", Aliases: []string{"حالة"}, NoArgs: true, Handler: d.handleStatus},
		{Name: "info", Aliases: []string{"معلومات"}, NoArgs: true, Handler: d.handleInfo},
		{Name: "newcode", Aliases: []string{"كود_جديد"}, NoArgs: true, Handler: d.handleNewCode},
		{Name: "changename", Usage: "<name>", MinArgs: 1, Handler: d.handleChangeName},
		{Name: "changeprofilepic", RequiresMedia: true, NoArgs: true, Handler: d.handleChangeProfilePic},
		{Name: "weather", Aliases: []string{"طقس"}, Usage: "<city>", MinArgs: 1, Handler: d.handleWeather},
		{Name: "translate", Aliases: []string{"ترجم"}, Usage: "<language>", MinArgs: 1, RequiresQuote: true, Handler: d.handleTranslate},
		{Name: "rock", Aliases: []string{"حجر"}, NoArgs: true, Handler: d.handleRock},

		{Name: "changegroupname", Usage: "<name>", MinArgs: 1, GroupOnly: true, Handler: d.handleChangeGroupName},
		{Name: "changegrouppic", GroupOnly: true, RequiresMedia: true, NoArgs: true, Handler: d.handleChangeGroupPic},
		{Name: "changegroupdesc", Usage: "<description>", MinArgs: 1, GroupOnly: true, Handler: d.handleChangeGroupDesc},
		{Name: "promote", Aliases: []string{"رفع"}, Usage: "<number> | reply", GroupOnly: true, Handler: d.handlePromote},
		{Name: "demote", Aliases: []string{"تنزيل"}, Usage: "<number> | reply", GroupOnly: true, Handler: d.handleDemote},
		{Name: "kick", Aliases: []string{"طرد"}, Usage: "<number> | reply", GroupOnly: true, Handler: d.handleKick},
		{Name: "mentionall", Aliases: []string{"منشن"}, GroupOnly: true, NoArgs: true, Handler: d.handleMentionAll},
		{Name: "pin", Aliases: []string{"تثبيت"}, GroupOnly: true, RequiresQuote: true, NoArgs: true, Handler: d.handlePin},
		{Name: "unpin", Aliases: []string{"الغاء_تثبيت"}, GroupOnly: true, RequiresQuote: true, NoArgs: true, Handler: d.handleUnpin},
		{Name: "cleanup", Aliases: []string{"تصفية"}, GroupOnly: true, NoArgs: true, Handler: d.handleCleanup},
		{Name: "inactive", Aliases: []string{"اصنام"}, GroupOnly: true, NoArgs: true, Handler: d.handleInactive},
		{Name: "stats", Aliases: []string{"احصائيات"}, GroupOnly: true, NoArgs: true, Handler: d.handleStats},
		{Name: "welcome", Aliases: []string{"ترحيب"}, Usage: "<text>", MinArgs: 1, GroupOnly: true, Handler: d.handleWelcome},
		{Name: "rules", Aliases: []string{"قواعد"}, Usage: "<text>", MinArgs: 1, GroupOnly: true, Handler: d.handleRules},
		{Name: "showrules", Aliases: []string{"عرض_قواعد"}, GroupOnly: true, NoArgs: true, Handler: d.handleShowRules},
		{Name: "antispam", Aliases: []string{"مكافحة_سبام"}, GroupOnly: true, NoArgs: true, Handler: d.handleAntiSpam},
		{Name: "linkfilter", Aliases: []string{"فلترة_روابط"}, GroupOnly: true, NoArgs: true, Handler: d.handleLinkFilter},
		{Name: "clean", Aliases: []string{"تنظيف"}, Usage: "[count]", GroupOnly: true, Handler: d.handleClean},

		{Name: "warn", Aliases: []string{"تحذير"}, GroupOnly: true, RequiresQuote: true, NoArgs: true, Handler: d.handleWarn},
		{Name: "warnings", Aliases: []string{"عرض_تحذيرات"}, GroupOnly: true, RequiresQuote: true, NoArgs: true, Handler: d.handleWarnings},
		{Name: "mute", Aliases: []string{"كتم"}, Usage: "[minutes]", GroupOnly: true, RequiresQuote: true, Handler: d.handleMute},

		{Name: "schedule", Aliases: []string{"جدولة"}, Usage: "<HH:MM> <text>", MinArgs: 2, Handler: d.handleSchedule},
		{Name: "remind", Aliases: []string{"تذكير"}, Usage: "<HH:MM> <text>", MinArgs: 2, Handler: d.handleRemind},
		{Name: "poll", Aliases: []string{"استطلاع"}, Usage: "<question>", MinArgs: 1, Handler: d.handlePoll},
		{Name: "yes", Aliases: []string{"نعم"}, Usage: "<poll id>", MinArgs: 1, Handler: d.handleVoteYes},
		{Name: "no", Aliases: []string{"لا"}, Usage: "<poll id>", MinArgs: 1, Handler: d.handleVoteNo},
		{Name: "results", Aliases: []string{"نتائج"}, Usage: "<poll id>", MinArgs: 1, Handler: d.handleResults},
	}
}
