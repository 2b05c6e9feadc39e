package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Minio   Minio
		Logger  Logger
	}

	InternalConfig struct {
		App App
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		UseSSL     bool
		BucketName string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	App struct {
		Env                    string
		Port                   string
		EndpointPrefix         string
		MaxRequests            int
		ShutdownTimeout        int
		UploadMaxSizeInMB      int64
		PatientCacheTTLSeconds int
	}
)
