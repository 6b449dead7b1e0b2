package division

// BalloonType categorizes a balloon. Exactly one type governs which optional
// balloon fields are meaningful: OwnerUserID is set only for User balloons,
// CountryCode only for Location balloons.
type BalloonType int16

const (
	// BalloonTypeGlobal is shared by all users.
	BalloonTypeGlobal BalloonType = 1
	// BalloonTypeLocation is tied to a geographic region.
	BalloonTypeLocation BalloonType = 2
	// BalloonTypeBreath belongs to the breathing exercise feature.
	BalloonTypeBreath BalloonType = 3
	// BalloonTypeUser is created and owned by a single user.
	BalloonTypeUser BalloonType = 4
	// BalloonTypeGuerrilla is a limited-time event balloon.
	BalloonTypeGuerrilla BalloonType = 5
)

var balloonTypes = newTable(map[BalloonType]meta{
	BalloonTypeGlobal:    {displayName: "グローバル風船", isDefault: true, displayOrder: 10},
	BalloonTypeLocation:  {displayName: "ロケーション風船", displayOrder: 20},
	BalloonTypeBreath:    {displayName: "深呼吸風船", displayOrder: 30},
	BalloonTypeUser:      {displayName: "ユーザー作成風船", displayOrder: 40},
	BalloonTypeGuerrilla: {displayName: "ゲリラ風船", displayOrder: 50},
})

// balloonTypeNames are the stable API identifiers, distinct from the
// localized display labels.
var balloonTypeNames = map[BalloonType]string{
	BalloonTypeGlobal:    "GLOBAL",
	BalloonTypeLocation:  "LOCATION",
	BalloonTypeBreath:    "BREATHING",
	BalloonTypeUser:      "USER",
	BalloonTypeGuerrilla: "GUERRILLA",
}

// Value returns the stable code persisted for this type.
func (t BalloonType) Value() int16 { return int16(t) }

// DisplayName returns the localized display label.
func (t BalloonType) DisplayName() string { return balloonTypes.displayName(t) }

// Name returns the stable API identifier, or "UNKNOWN" for unknown codes.
func (t BalloonType) Name() string {
	if name, ok := balloonTypeNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

// IsValid reports whether the code belongs to the closed set.
func (t BalloonType) IsValid() bool { return balloonTypes.isValid(t) }

// BalloonTypeFromValue resolves a persisted code back to a type.
func BalloonTypeFromValue(value int16) (BalloonType, bool) { return balloonTypes.fromValue(value) }

// BalloonTypes lists all types in display order.
func BalloonTypes() []BalloonType { return balloonTypes.list() }

// BalloonDisplayGroup classifies how a balloon is placed on screen.
type BalloonDisplayGroup int16

const (
	// BalloonDisplayGroupPinned renders at a fixed position.
	BalloonDisplayGroupPinned BalloonDisplayGroup = 1
	// BalloonDisplayGroupDrifting floats across the screen.
	BalloonDisplayGroupDrifting BalloonDisplayGroup = 2
)

var balloonDisplayGroups = newTable(map[BalloonDisplayGroup]meta{
	BalloonDisplayGroupPinned:   {displayName: "ピン留め", isDefault: true, displayOrder: 10},
	BalloonDisplayGroupDrifting: {displayName: "漂う", displayOrder: 20},
})

// Value returns the stable code persisted for this group.
func (g BalloonDisplayGroup) Value() int16 { return int16(g) }

// DisplayName returns the localized display label.
func (g BalloonDisplayGroup) DisplayName() string { return balloonDisplayGroups.displayName(g) }

// IsValid reports whether the code belongs to the closed set.
func (g BalloonDisplayGroup) IsValid() bool { return balloonDisplayGroups.isValid(g) }

// BalloonDisplayGroupFromValue resolves a persisted code back to a group.
func BalloonDisplayGroupFromValue(value int16) (BalloonDisplayGroup, bool) {
	return balloonDisplayGroups.fromValue(value)
}

// BalloonVisibility controls who can see and select a balloon.
type BalloonVisibility int16

const (
	// BalloonVisibilitySystem is managed by the system and always visible.
	BalloonVisibilitySystem BalloonVisibility = 1
	// BalloonVisibilityPrivate is visible only to its owner.
	BalloonVisibilityPrivate BalloonVisibility = 2
	// BalloonVisibilityPublic is visible to and selectable by everyone.
	BalloonVisibilityPublic BalloonVisibility = 3
)

var balloonVisibilities = newTable(map[BalloonVisibility]meta{
	BalloonVisibilitySystem:  {displayName: "システム", isDefault: true, displayOrder: 10},
	BalloonVisibilityPrivate: {displayName: "非公開", displayOrder: 20},
	BalloonVisibilityPublic:  {displayName: "公開", displayOrder: 30},
})

// Value returns the stable code persisted for this visibility.
func (v BalloonVisibility) Value() int16 { return int16(v) }

// DisplayName returns the localized display label.
func (v BalloonVisibility) DisplayName() string { return balloonVisibilities.displayName(v) }

// IsValid reports whether the code belongs to the closed set.
func (v BalloonVisibility) IsValid() bool { return balloonVisibilities.isValid(v) }

// BalloonVisibilityFromValue resolves a persisted code back to a visibility.
func BalloonVisibilityFromValue(value int16) (BalloonVisibility, bool) {
	return balloonVisibilities.fromValue(value)
}
