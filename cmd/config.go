package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	EventLogPath       string
	MapsBaseURL        string
	GeocodingAPIKey    string
	DeliveryOriginLat  string
	DeliveryOriginLng  string
	DeliveryPricePerKm string
	DeliveryMinFee     string
}
