package models

import "testing"

func TestAppType(t *testing.T) {
	tests := []struct {
		name      string
		appType   AppType
		wantValid bool
		wantLabel string
	}{
		{"web app", AppTypeWebApp, true, "Web App"},
		{"react native", AppTypeReactNative, true, "React Native"},
		{"native ios", AppTypeNativeIOS, true, "Native iOS"},
		{"empty", AppType(""), false, ""},
		{"unknown", AppType("android"), false, ""},
		{"label is not an identifier", AppType("Web App"), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appType.Valid(); got != tt.wantValid {
				t.Errorf("Valid() = %v, want %v", got, tt.wantValid)
			}
			if got := tt.appType.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
		})
	}
}

func TestAppTypesCoversAllIdentifiers(t *testing.T) {
	types := AppTypes()
	if len(types) != 3 {
		t.Fatalf("len(AppTypes()) = %d, want 3", len(types))
	}
	for _, appType := range types {
		if !appType.Valid() {
			t.Errorf("AppTypes() contains invalid identifier %q", appType)
		}
	}
}
