package locale

var english = map[string]string{
	MsgGenericError:  "❌ An error occurred while processing the command",
	MsgRateLimited:   "⚠️ Command limit exceeded. Please wait a minute.",
	MsgAdminOnly:     "❌ This command is for group admins only",
	MsgGroupOnly:     "❌ This command only works in groups",
	MsgQuoteRequired: "❌ Reply to a message to use this command",
	MsgMediaRequired: "❌ Attach an image to use this command",
	MsgUsage:         "❌ Usage: {{.Usage}}",
	MsgLinkBlocked:   "🚫 Links are not allowed in this group",
	MsgReminder:      "🔔 Reminder: {{.Text}}",
	MsgWelcome:       "🎉 {{.Text}}",

	MsgHelpHeader: "🤖 *Available commands:*",
	MsgStatus:     "🤖 *Bot status:*\n• State: {{.State}}\n• Name: {{.Name}}\n• ID: {{.ID}}\n• Platform: {{.Platform}}\n• Scheduled messages: {{.Scheduled}}\n• Reminders: {{.Reminders}}\n• Active polls: {{.Polls}}",
	MsgConnected:  "connected ✅",
	MsgOffline:    "not linked ❌",
	MsgInfo:       "🤖 *Bot info:*\n📱 Name: {{.Name}}\n🔢 ID: {{.ID}}\n💻 Platform: {{.Platform}}\n🔗 State: {{.State}}\n⚡ Link method: {{.Method}}\n🔑 Last pairing code: {{.Code}}\n📱 Pairing phone: {{.Phone}}\n🕐 Uptime: {{.Minutes}} minutes",
	MsgNewCode:    "🔑 New pairing code: {{.Code}}\n\n📋 To use it:\n1. Open Settings\n2. Linked devices\n3. Link a device\n4. Link with phone number\n5. Enter: {{.Code}}",
	MsgNotSet:     "not set",

	MsgChangeNameOK:     "✅ Bot name changed to: {{.Name}}",
	MsgChangeNameFailed: "❌ Failed to change the name",
	MsgProfilePicOK:     "✅ Profile picture changed",
	MsgProfilePicFailed: "❌ Failed to change the profile picture",
	MsgWeather:          "🌤️ Weather in {{.City}}: sunny, 25°C\n💨 Wind: 10 km/h\n💧 Humidity: 60%",
	MsgTranslate:        "[translated to {{.Lang}}]: {{.Text}}",
	MsgRock:             "🎮 You: {{.User}}\n🤖 Bot: {{.Bot}}\n{{.Result}}",
	MsgRockRock:         "rock",
	MsgRockPaper:        "paper",
	MsgRockScissors:     "scissors",
	MsgRockDraw:         "Draw!",
	MsgRockWin:          "You win!",
	MsgRockLose:         "You lose!",
	MsgGroupNameOK:      "✅ Group name changed to: {{.Name}}",
	MsgGroupNameFailed:  "❌ Failed to change the group name",
	MsgGroupPicOK:       "✅ Group picture changed",
	MsgGroupPicFailed:   "❌ Failed to change the group picture",
	MsgGroupDescOK:      "✅ Group description changed",
	MsgGroupDescFailed:  "❌ Failed to change the group description",
	MsgPromoteOK:        "✅ {{.Target}} is now an admin",
	MsgPromoteFailed:    "❌ Failed to promote the member",
	MsgDemoteOK:         "✅ {{.Target}} is no longer an admin",
	MsgDemoteFailed:     "❌ Failed to demote the admin",
	MsgKickOK:           "✅ {{.Target}} was removed",
	MsgKickFailed:       "❌ Failed to remove the member",
	MsgMentionAllHeader: "📢 Attention everyone:",
	MsgMentionAllFailed: "❌ Failed to mention everyone",
	MsgPinOK:            "✅ Message pinned",
	MsgPinFailed:        "❌ Failed to pin the message",
	MsgUnpinOK:          "✅ Message unpinned",
	MsgUnpinFailed:      "❌ Failed to unpin the message",
	MsgCleanupOK:        "✅ Removed {{.Count}} inactive members",
	MsgCleanupFailed:    "❌ Cleanup failed",
	MsgInactiveHeader:   "🗿 Inactive members:",
	MsgInactiveNone:     "✅ All members are active!",
	MsgInactiveFailed:   "❌ Failed to list inactive members",
	MsgStats:            "📊 *Group stats:*\n👥 Total members: {{.Total}}\n👑 Admins: {{.Admins}}\n👤 Members: {{.Members}}\n📅 Created: {{.Created}}",
	MsgStatsFailed:      "❌ Failed to show group stats",
	MsgWelcomeSet:       "✅ Welcome message set",
	MsgRulesSet:         "✅ Group rules saved",
	MsgRulesShow:        "📋 *Group rules:*\n{{.Rules}}",
	MsgRulesNone:        "❌ No rules have been set for this group",
	MsgWarn:             "⚠️ {{.Target}} has been warned\nWarnings: {{.Count}}/{{.Threshold}}",
	MsgWarnKicked:       "🚫 {{.Target}} was removed after {{.Threshold}} warnings",
	MsgWarnKickFailed:   "❌ Failed to remove the member",
	MsgWarnings:         "⚠️ {{.Target}} has {{.Count}}/{{.Threshold}} warnings",
	MsgMuted:            "🔇 {{.Target}} muted for {{.Minutes}} minutes",
	MsgScheduled:        "⏰ Message scheduled for {{.Time}}",
	MsgReminderSet:      "⏰ Reminder set for {{.Time}}",
	MsgInvalidTime:      "❌ Invalid time, use HH:MM",
	MsgPollCreated:      "📊 *Poll:*\n{{.Question}}\n\nTo vote:\n✅ {{.Prefix}}yes {{.ID}}\n❌ {{.Prefix}}no {{.ID}}",
	MsgVoteYes:          "✅ Your vote was recorded: yes",
	MsgVoteNo:           "❌ Your vote was recorded: no",
	MsgAlreadyVoted:     "❌ You have already voted",
	MsgResults:          "📊 *Poll results:*\n{{.Question}}\n\n✅ Yes: {{.Yes}} ({{.YesPercent}}%)\n❌ No: {{.No}} ({{.NoPercent}}%)\n\nTotal votes: {{.Total}}",
	MsgAntiSpamOn:       "✅ Anti-spam enabled",
	MsgAntiSpamOff:      "❌ Anti-spam disabled",
	MsgLinkFilterOn:     "✅ Link filter enabled",
	MsgLinkFilterOff:    "❌ Link filter disabled",
	MsgCleanOK:          "✅ Deleted {{.Count}} messages",
	MsgCleanTooMany:     "❌ Cannot delete more than {{.Max}} messages at once",
	MsgCleanFailed:      "❌ Failed to delete messages",

	"help.help":             "show this message",
	"help.status":           "bot status",
	"help.info":             "bot account info",
	"help.newcode":          "generate a new pairing code",
	"help.changename":       "change the bot name",
	"help.changeprofilepic": "change the bot picture (attach an image)",
	"help.weather":          "weather for a city",
	"help.translate":        "translate the replied message",
	"help.rock":             "rock paper scissors",
	"help.changegroupname":  "change the group name",
	"help.changegrouppic":   "change the group picture (attach an image)",
	"help.changegroupdesc":  "change the group description",
	"help.promote":          "make a member admin (reply or number)",
	"help.demote":           "remove admin rights",
	"help.kick":             "remove a member",
	"help.mentionall":       "mention every member",
	"help.pin":              "pin the replied message",
	"help.unpin":            "unpin the replied message",
	"help.cleanup":          "remove inactive members",
	"help.inactive":         "list inactive members",
	"help.stats":            "group statistics",
	"help.welcome":          "set the welcome message, {user} is the new member",
	"help.rules":            "save the group rules",
	"help.showrules":        "show the group rules",
	"help.warn":             "warn the replied member",
	"help.warnings":         "show the replied member's warnings",
	"help.mute":             "mute the replied member",
	"help.schedule":         "schedule a message",
	"help.remind":           "set a reminder",
	"help.poll":             "create a yes/no poll",
	"help.yes":              "vote yes",
	"help.no":               "vote no",
	"help.results":          "poll results",
	"help.antispam":         "toggle anti-spam",
	"help.linkfilter":       "toggle the link filter",
	"help.clean":            "delete the latest messages of the chat",
}
