package division

// ContributionSourceType identifies the action that produced a contribution.
type ContributionSourceType int16

const (
	// ContributionSourceTask is a task completion.
	ContributionSourceTask ContributionSourceType = 1
	// ContributionSourceBreath is a breathing exercise.
	ContributionSourceBreath ContributionSourceType = 2
	// ContributionSourceSystem is a system grant.
	ContributionSourceSystem ContributionSourceType = 3
	// ContributionSourceAdmin is a manual administrator grant.
	ContributionSourceAdmin ContributionSourceType = 4
)

var contributionSourceTypes = newTable(map[ContributionSourceType]meta{
	ContributionSourceTask:   {displayName: "タスク", isDefault: true, displayOrder: 10},
	ContributionSourceBreath: {displayName: "深呼吸", displayOrder: 20},
	ContributionSourceSystem: {displayName: "システム", displayOrder: 30},
	ContributionSourceAdmin:  {displayName: "管理者", displayOrder: 40},
})

// Value returns the stable code persisted for this source.
func (t ContributionSourceType) Value() int16 { return int16(t) }

// DisplayName returns the localized display label.
func (t ContributionSourceType) DisplayName() string { return contributionSourceTypes.displayName(t) }

// IsValid reports whether the code belongs to the closed set.
func (t ContributionSourceType) IsValid() bool { return contributionSourceTypes.isValid(t) }

// ContributionSourceTypeFromValue resolves a persisted code back to a source.
func ContributionSourceTypeFromValue(value int16) (ContributionSourceType, bool) {
	return contributionSourceTypes.fromValue(value)
}

// PopContextType identifies what triggered a balloon pop.
type PopContextType int16

const (
	// PopContextTask means a task completion crossed the threshold.
	PopContextTask PopContextType = 1
	// PopContextBreath means a breathing exercise crossed the threshold.
	PopContextBreath PopContextType = 2
	// PopContextOther covers any other trigger.
	PopContextOther PopContextType = 3
)

var popContextTypes = newTable(map[PopContextType]meta{
	PopContextTask:   {displayName: "タスク", isDefault: true, displayOrder: 10},
	PopContextBreath: {displayName: "深呼吸", displayOrder: 20},
	PopContextOther:  {displayName: "その他", displayOrder: 30},
})

// Value returns the stable code persisted for this context.
func (t PopContextType) Value() int16 { return int16(t) }

// DisplayName returns the localized display label.
func (t PopContextType) DisplayName() string { return popContextTypes.displayName(t) }

// IsValid reports whether the code belongs to the closed set.
func (t PopContextType) IsValid() bool { return popContextTypes.isValid(t) }

// PopContextTypeFromValue resolves a persisted code back to a context.
func PopContextTypeFromValue(value int16) (PopContextType, bool) {
	return popContextTypes.fromValue(value)
}

// ProgressUnitType is the scope a balloon accumulates progress over.
type ProgressUnitType int16

const (
	// ProgressUnitUser accumulates per user.
	ProgressUnitUser ProgressUnitType = 1
	// ProgressUnitCountry accumulates per country.
	ProgressUnitCountry ProgressUnitType = 2
	// ProgressUnitGlobal accumulates across all users.
	ProgressUnitGlobal ProgressUnitType = 3
	// ProgressUnitUTCDay accumulates per UTC day.
	ProgressUnitUTCDay ProgressUnitType = 4
	// ProgressUnitEvent accumulates per event.
	ProgressUnitEvent ProgressUnitType = 5
)

var progressUnitTypes = newTable(map[ProgressUnitType]meta{
	ProgressUnitUser:    {displayName: "ユーザー", isDefault: true, displayOrder: 10},
	ProgressUnitCountry: {displayName: "国", displayOrder: 20},
	ProgressUnitGlobal:  {displayName: "全体", displayOrder: 30},
	ProgressUnitUTCDay:  {displayName: "UTC日", displayOrder: 40},
	ProgressUnitEvent:   {displayName: "イベント", displayOrder: 50},
})

// Value returns the stable code persisted for this unit.
func (t ProgressUnitType) Value() int16 { return int16(t) }

// DisplayName returns the localized display label.
func (t ProgressUnitType) DisplayName() string { return progressUnitTypes.displayName(t) }

// IsValid reports whether the code belongs to the closed set.
func (t ProgressUnitType) IsValid() bool { return progressUnitTypes.isValid(t) }

// ProgressUnitTypeFromValue resolves a persisted code back to a unit.
func ProgressUnitTypeFromValue(value int16) (ProgressUnitType, bool) {
	return progressUnitTypes.fromValue(value)
}
