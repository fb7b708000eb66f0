package misc

const (
	// redis key prefix of one-time download tickets
	DownloadPrefix = "dl"
	// redis HyperLogLog prefix of daily unique clients
	DAUPrefix = "dau"

	TagSeparator = ","
)
