package model

type UpdateCheckRequest struct {
	DeploymentKey  string   `query:"deploymentKey" validate:"required,slug"`
	AppVersion     string   `query:"appVersion" validate:"required"`
	PackageHash    string   `query:"packageHash"`
	Label          string   `query:"label"`
	ClientUniqueID string   `query:"clientUniqueId"`
	IsCompanion    bool     `query:"isCompanion"`
	Tags           []string `query:"-"`
	RawTags        string   `query:"tags"`
}

type IsUpdateAbleRequest struct {
	ClientUniqueID string   `query:"clientUniqueId"`
	PackageHash    string   `query:"packageHash" validate:"required"`
	Rollout        int      `query:"rollout" validate:"min=0,max=100"`
	Tags           []string `query:"-"`
	RawTags        string   `query:"tags"`
}
