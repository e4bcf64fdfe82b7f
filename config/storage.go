package config

import "main/utils"

type StorageConfig struct {
	UploadPath string
	PublicPath string
}

func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		UploadPath: utils.GetEnvAsString("UPLOAD_PATH", "./uploads"),
		PublicPath: utils.GetEnvAsString("UPLOAD_PUBLIC_PATH", "/uploads"),
	}
}
