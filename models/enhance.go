package models

// AppType identifies the target platform for the generated build brief.
type AppType string

const (
	AppTypeWebApp      AppType = "web-app"
	AppTypeReactNative AppType = "react-native"
	AppTypeNativeIOS   AppType = "native-ios"
)

var appTypeLabels = map[AppType]string{
	AppTypeWebApp:      "Web App",
	AppTypeReactNative: "React Native",
	AppTypeNativeIOS:   "Native iOS",
}

// Valid reports whether the app type is one of the recognized platform identifiers.
func (a AppType) Valid() bool {
	_, ok := appTypeLabels[a]
	return ok
}

// Label returns the human-readable platform name embedded in the outbound
// prompt and shown in the UI. Empty for unrecognized identifiers.
func (a AppType) Label() string {
	return appTypeLabels[a]
}

// AppTypes lists the recognized platform identifiers.
func AppTypes() []AppType {
	return []AppType{AppTypeWebApp, AppTypeReactNative, AppTypeNativeIOS}
}

type EnhanceRequest struct {
	Idea    string  `json:"idea"`
	AppType AppType `json:"appType"`
}

type EnhanceResponse struct {
	EnhancedPrompt string `json:"enhancedPrompt"`
}
