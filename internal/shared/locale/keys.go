package locale

// Message ids shared by the dispatcher and the scanner
const (
	MsgGenericError  = "error.generic"
	MsgRateLimited   = "error.rate_limited"
	MsgAdminOnly     = "error.admin_only"
	MsgGroupOnly     = "error.group_only"
	MsgQuoteRequired = "error.quote_required"
	MsgMediaRequired = "error.media_required"
	MsgUsage         = "error.usage"
	MsgLinkBlocked   = "linkfilter.blocked"
	MsgReminder      = "reminder.text"
	MsgWelcome       = "welcome.text"

	MsgHelpHeader = "help.header"
	MsgStatus     = "status.text"
	MsgConnected  = "status.connected"
	MsgOffline    = "status.offline"
	MsgInfo       = "info.text"
	MsgNewCode    = "newcode.text"
	MsgNotSet     = "common.not_set"

	MsgChangeNameOK     = "changename.ok"
	MsgChangeNameFailed = "changename.failed"
	MsgProfilePicOK     = "changeprofilepic.ok"
	MsgProfilePicFailed = "changeprofilepic.failed"
	MsgWeather          = "weather.text"
	MsgTranslate        = "translate.text"
	MsgRock             = "rock.text"
	MsgRockRock         = "rock.rock"
	MsgRockPaper        = "rock.paper"
	MsgRockScissors     = "rock.scissors"
	MsgRockDraw         = "rock.draw"
	MsgRockWin          = "rock.win"
	MsgRockLose         = "rock.lose"
	MsgGroupNameOK      = "changegroupname.ok"
	MsgGroupNameFailed  = "changegroupname.failed"
	MsgGroupPicOK       = "changegrouppic.ok"
	MsgGroupPicFailed   = "changegrouppic.failed"
	MsgGroupDescOK      = "changegroupdesc.ok"
	MsgGroupDescFailed  = "changegroupdesc.failed"
	MsgPromoteOK        = "promote.ok"
	MsgPromoteFailed    = "promote.failed"
	MsgDemoteOK         = "demote.ok"
	MsgDemoteFailed     = "demote.failed"
	MsgKickOK           = "kick.ok"
	MsgKickFailed       = "kick.failed"
	MsgMentionAllHeader = "mentionall.header"
	MsgMentionAllFailed = "mentionall.failed"
	MsgPinOK            = "pin.ok"
	MsgPinFailed        = "pin.failed"
	MsgUnpinOK          = "unpin.ok"
	MsgUnpinFailed      = "unpin.failed"
	MsgCleanupOK        = "cleanup.ok"
	MsgCleanupFailed    = "cleanup.failed"
	MsgInactiveHeader   = "inactive.header"
	MsgInactiveNone     = "inactive.none"
	MsgInactiveFailed   = "inactive.failed"
	MsgStats            = "stats.text"
	MsgStatsFailed      = "stats.failed"
	MsgWelcomeSet       = "welcome.set"
	MsgRulesSet         = "rules.set"
	MsgRulesShow        = "showrules.text"
	MsgRulesNone        = "showrules.none"
	MsgWarn             = "warn.text"
	MsgWarnKicked       = "warn.kicked"
	MsgWarnKickFailed   = "warn.kick_failed"
	MsgWarnings         = "warnings.text"
	MsgMuted            = "mute.ok"
	MsgScheduled        = "schedule.ok"
	MsgReminderSet      = "remind.ok"
	MsgInvalidTime      = "schedule.invalid_time"
	MsgPollCreated      = "poll.created"
	MsgVoteYes          = "vote.yes"
	MsgVoteNo           = "vote.no"
	MsgAlreadyVoted     = "vote.already"
	MsgResults          = "results.text"
	MsgAntiSpamOn       = "antispam.on"
	MsgAntiSpamOff      = "antispam.off"
	MsgLinkFilterOn     = "linkfilter.on"
	MsgLinkFilterOff    = "linkfilter.off"
	MsgCleanOK          = "clean.ok"
	MsgCleanTooMany     = "clean.too_many"
	MsgCleanFailed      = "clean.failed"
)

// HelpKey is the id of a command's one-line help description
func HelpKey(command string) string {
	return "help." + command
}
