package model

type UpdateCheckResult struct {
	IsAvailable bool
	PackageHash string
	Label       string
	// AppVersion is the normalized target version of the package
	AppVersion  string
	Description string
	IsMandatory bool
	PackageSize int64
	DownloadURL string
	Delivery    *Descriptor
}

type UpdateCheckResponseData struct {
	IsAvailable    bool   `json:"isAvailable"`
	PackageHash    string `json:"packageHash,omitempty"`
	Label          string `json:"label,omitempty"`
	AppVersion     string `json:"appVersion,omitempty"`
	Description    string `json:"description,omitempty"`
	IsMandatory    bool   `json:"isMandatory,omitempty"`
	PackageSize    int64  `json:"packageSize,omitempty"`
	DownloadURL    string `json:"downloadUrl,omitempty"`
	UpdateType     string `json:"updateType,omitempty"`
	DiffSourceHash string `json:"diffSourceHash,omitempty"`
}

type DistributeInfo struct {
	DeploymentKey string `json:"deployment_key"`
	ClientID      string `json:"client_id,omitempty"`
	BlobKey       string `json:"blob_key"`
	PackageHash   string `json:"package_hash"`
	Size          int64  `json:"size,omitempty"`
}
