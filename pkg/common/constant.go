package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyConfigFile string = "ALERTS_CONFIG_FILE"

	EnvKeyDBType      string = "ALERTS_DB_TYPE"
	EnvKeyDbPath      string = "ALERTS_DB_PATH"
	EnvKeyPostgresDSN string = "ALERTS_POSTGRES_DSN"

	EnvKeyHttpHostPort string = "ALERTS_HTTP_HOST_PORT"
	EnvKeyGrpcHostPort string = "ALERTS_GRPC_HOST_PORT"

	EnvKeyDefaultRate  string = "ALERTS_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "ALERTS_DEFAULT_BURST"

	EnvKeyWindowDays   string = "ALERT_WINDOW_DAYS"
	EnvKeyScanInterval string = "ALERTS_SCAN_INTERVAL"
	EnvKeyScanHour     string = "ALERTS_SCAN_HOUR"

	EnvKeyRelayNATSURL      string = "ALERTS_RELAY_NATS_URL"
	EnvKeyRelayNATSSubject  string = "ALERTS_RELAY_NATS_SUBJECT"
	EnvKeyRelayKafkaBrokers string = "ALERTS_RELAY_KAFKA_BROKERS"
	EnvKeyRelayKafkaTopic   string = "ALERTS_RELAY_KAFKA_TOPIC"
	EnvKeyRelayRedisAddr    string = "ALERTS_RELAY_REDIS_ADDR"
	EnvKeyRelayRedisChannel string = "ALERTS_RELAY_REDIS_CHANNEL"

	LoggerNameAlertsCore    string = "alerts_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameScheduler     string = "scheduler"
	LoggerNameRelay         string = "relay"
	LoggerFieldCategory     string = "category"
	LoggerCategoryReconcile string = "reconcile"
	LoggerCategoryQuery     string = "query"
	LoggerCategoryStore     string = "store"
	LoggerCategoryInventory string = "inventory"
)
