package division

// UserPlan is the subscription tier of a user.
type UserPlan int16

const (
	// UserPlanFree is the default no-cost tier.
	UserPlanFree UserPlan = 1
	// UserPlanPro is the paid tier.
	UserPlanPro UserPlan = 2
)

var userPlans = newTable(map[UserPlan]meta{
	UserPlanFree: {displayName: "FREE", isDefault: true, displayOrder: 10},
	UserPlanPro:  {displayName: "PRO", displayOrder: 20},
})

// Value returns the stable code persisted for this plan.
func (p UserPlan) Value() int16 { return int16(p) }

// DisplayName returns the plan label exposed to clients.
func (p UserPlan) DisplayName() string { return userPlans.displayName(p) }

// IsValid reports whether the code belongs to the closed set.
func (p UserPlan) IsValid() bool { return userPlans.isValid(p) }

// UserPlanFromValue resolves a persisted code back to a plan.
func UserPlanFromValue(value int16) (UserPlan, bool) { return userPlans.fromValue(value) }

// DefaultUserPlan is the plan assigned at guest registration.
func DefaultUserPlan() UserPlan { return userPlans.def }

// AuthState is the authentication state of a user account.
type AuthState int16

const (
	// AuthStateGuest means the account has not been linked to a provider.
	AuthStateGuest AuthState = 1
	// AuthStateLinked means the account is linked to an identity provider.
	AuthStateLinked AuthState = 2
	// AuthStateDisabled means the account has been deactivated.
	AuthStateDisabled AuthState = 3
)

var authStates = newTable(map[AuthState]meta{
	AuthStateGuest:    {displayName: "ゲスト", isDefault: true, displayOrder: 10},
	AuthStateLinked:   {displayName: "連携済み", displayOrder: 20},
	AuthStateDisabled: {displayName: "無効", displayOrder: 30},
})

// Value returns the stable code persisted for this state.
func (s AuthState) Value() int16 { return int16(s) }

// DisplayName returns the localized display label.
func (s AuthState) DisplayName() string { return authStates.displayName(s) }

// IsValid reports whether the code belongs to the closed set.
func (s AuthState) IsValid() bool { return authStates.isValid(s) }

// AuthStateFromValue resolves a persisted code back to a state.
func AuthStateFromValue(value int16) (AuthState, bool) { return authStates.fromValue(value) }

// RenderQuality is the client rendering quality preference.
type RenderQuality int16

const (
	// RenderQualityAuto lets the client pick based on device capability.
	RenderQualityAuto RenderQuality = 1
	// RenderQualityNormal forces standard quality.
	RenderQualityNormal RenderQuality = 2
	// RenderQualityLow forces reduced quality.
	RenderQualityLow RenderQuality = 3
)

var renderQualities = newTable(map[RenderQuality]meta{
	RenderQualityAuto:   {displayName: "自動", isDefault: true, displayOrder: 10},
	RenderQualityNormal: {displayName: "通常", displayOrder: 20},
	RenderQualityLow:    {displayName: "低品質", displayOrder: 30},
})

// Value returns the stable code persisted for this preference.
func (q RenderQuality) Value() int16 { return int16(q) }

// DisplayName returns the localized display label.
func (q RenderQuality) DisplayName() string { return renderQualities.displayName(q) }

// IsValid reports whether the code belongs to the closed set.
func (q RenderQuality) IsValid() bool { return renderQualities.isValid(q) }

// RenderQualityFromValue resolves a persisted code back to a preference.
func RenderQualityFromValue(value int16) (RenderQuality, bool) {
	return renderQualities.fromValue(value)
}

// DefaultRenderQuality is the preference assigned at registration.
func DefaultRenderQuality() RenderQuality { return renderQualities.def }

// IdentityProvider is the external provider an account can be linked to.
type IdentityProvider int16

const (
	// IdentityProviderApple is Sign in with Apple.
	IdentityProviderApple IdentityProvider = 1
	// IdentityProviderGoogle is Google Sign-In.
	IdentityProviderGoogle IdentityProvider = 2
	// IdentityProviderAnon marks an anonymous (guest) identity.
	IdentityProviderAnon IdentityProvider = 3
)

var identityProviders = newTable(map[IdentityProvider]meta{
	IdentityProviderApple:  {displayName: "APPLE", isDefault: true, displayOrder: 10},
	IdentityProviderGoogle: {displayName: "GOOGLE", displayOrder: 20},
	IdentityProviderAnon:   {displayName: "ANON", displayOrder: 30},
})

// Value returns the stable code persisted for this provider.
func (p IdentityProvider) Value() int16 { return int16(p) }

// DisplayName returns the provider label.
func (p IdentityProvider) DisplayName() string { return identityProviders.displayName(p) }

// IsValid reports whether the code belongs to the closed set.
func (p IdentityProvider) IsValid() bool { return identityProviders.isValid(p) }

// IdentityProviderFromValue resolves a persisted code back to a provider.
func IdentityProviderFromValue(value int16) (IdentityProvider, bool) {
	return identityProviders.fromValue(value)
}

// DevicePlatform is the client platform a device runs on.
type DevicePlatform int16

const (
	// DevicePlatformIOS is the iOS client.
	DevicePlatformIOS DevicePlatform = 1
	// DevicePlatformAndroid is the Android client.
	DevicePlatformAndroid DevicePlatform = 2
	// DevicePlatformWeb is the web client.
	DevicePlatformWeb DevicePlatform = 3
)

var devicePlatforms = newTable(map[DevicePlatform]meta{
	DevicePlatformIOS:     {displayName: "iOS", isDefault: true, displayOrder: 10},
	DevicePlatformAndroid: {displayName: "Android", displayOrder: 20},
	DevicePlatformWeb:     {displayName: "Web", displayOrder: 30},
})

// Value returns the stable code persisted for this platform.
func (p DevicePlatform) Value() int16 { return int16(p) }

// DisplayName returns the platform label.
func (p DevicePlatform) DisplayName() string { return devicePlatforms.displayName(p) }

// IsValid reports whether the code belongs to the closed set.
func (p DevicePlatform) IsValid() bool { return devicePlatforms.isValid(p) }

// DevicePlatformFromValue resolves a persisted code back to a platform.
func DevicePlatformFromValue(value int16) (DevicePlatform, bool) {
	return devicePlatforms.fromValue(value)
}
