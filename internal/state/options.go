package state

// LikeTag is a feedback chip for what the user liked.
type LikeTag int

const (
	LikeEasyToUse LikeTag = iota
	LikeComplete
	LikeHelpful
	LikeConvenient
	LikeLooksGood
)

var likeTitles = [...]string{
	LikeEasyToUse:  "EASY TO USE",
	LikeComplete:   "COMPLETE",
	LikeHelpful:    "HELPFUL",
	LikeConvenient: "CONVENIENT",
	LikeLooksGood:  "LOOKS GOOD",
}

func (t LikeTag) Title() string {
	if t < 0 || int(t) >= len(likeTitles) {
		return "UNKNOWN"
	}
	return likeTitles[t]
}

func AllLikeTags() []LikeTag {
	return []LikeTag{LikeEasyToUse, LikeComplete, LikeHelpful, LikeConvenient, LikeLooksGood}
}

// ImproveTag is a feedback chip for what could be better.
type ImproveTag int

const (
	ImproveMoreComponents ImproveTag = iota
	ImproveComplex
	ImproveNotInteractive
	ImproveOnlyEnglish
)

var improveTitles = [...]string{
	ImproveMoreComponents: "COULD HAVE MORE COMPONENTS",
	ImproveComplex:        "COMPLEX",
	ImproveNotInteractive: "NOT INTERACTIVE",
	ImproveOnlyEnglish:    "ONLY ENGLISH",
}

func (t ImproveTag) Title() string {
	if t < 0 || int(t) >= len(improveTitles) {
		return "UNKNOWN"
	}
	return improveTitles[t]
}

func AllImproveTags() []ImproveTag {
	return []ImproveTag{ImproveMoreComponents, ImproveComplex, ImproveNotInteractive, ImproveOnlyEnglish}
}

// PlanOption is a billing period.
type PlanOption int

const (
	PlanYearly PlanOption = iota
	PlanMonthly
	PlanWeekly
)

func (o PlanOption) Title() string {
	switch o {
	case PlanYearly:
		return "Yearly"
	case PlanMonthly:
		return "Monthly"
	case PlanWeekly:
		return "Weekly"
	default:
		return "Unknown"
	}
}

// Period is the billing cadence as shown under the price.
func (o PlanOption) Period() string {
	switch o {
	case PlanYearly:
		return "every year"
	case PlanMonthly:
		return "every month"
	case PlanWeekly:
		return "every week"
	default:
		return ""
	}
}

// Setting is an entry on the settings screen.
type Setting int

const (
	SettingSavedMessages Setting = iota
	SettingRecentCalls
	SettingDevices
	SettingNotifications
	SettingAppearance
	SettingLanguage
	SettingPrivacySecurity
	SettingStorage
)

var settingTitles = [...]string{
	SettingSavedMessages:   "Saved Messages",
	SettingRecentCalls:     "Recent Calls",
	SettingDevices:         "Devices",
	SettingNotifications:   "Notifications",
	SettingAppearance:      "Appearance",
	SettingLanguage:        "Language",
	SettingPrivacySecurity: "Privacy & Security",
	SettingStorage:         "Storage",
}

func (s Setting) Title() string {
	if s < 0 || int(s) >= len(settingTitles) {
		return "Unknown"
	}
	return settingTitles[s]
}

func AllSettings() []Setting {
	settings := make([]Setting, len(settingTitles))
	for i := range settingTitles {
		settings[i] = Setting(i)
	}
	return settings
}
