package constants

// Centralized constants for headers, env keys and route paths.
const (
	// Environment variable keys
	EnvConfigPath    = "DUEL_CONFIG"
	EnvSessionSecret = "SESSION_SECRET"

	// Defaults used when neither the config file nor the environment set a value.
	DefaultConfigPath = "./duel.toml"
	DefaultAddress    = ":8080"
	DefaultDBPath     = "./data/battles.db"
	DefaultSkillsPath = "./configs/skills.json"
	DefaultLanguage   = "en"

	// HTTP headers
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"

	// Authorization prefix
	BearerPrefix = "Bearer "
)

// Gin context keys populated by middleware.
const (
	CtxActorID   = "actorID"
	CtxActorName = "actorName"
	CtxRequestID = "requestID"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"
	RouteHelp      = "/help"
	RouteSkills    = "/skills"
	RouteRoom      = "/rooms/:roomID"
	RouteRoomStart = "/rooms/:roomID/start"
	RouteRoomReset = "/rooms/:roomID/new"
	RouteRoomSeed  = "/rooms/:roomID/seed"
	RouteRoomFight = "/rooms/:roomID/action"
	RouteRoomFeed  = "/rooms/:roomID/feed"
	RouteVersion   = "/version"
	RouteHealth    = "/healthz"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
	JSONKeyReport  = "report"
	JSONKeyRound   = "round"
	JSONKeySeed    = "seed"
	JSONKeyBattle  = "battle"
)

// Fixed synchronizer responses. Callers compare against these, so keep them stable.
const (
	MsgRoomFull     = "this room is a two-player duel; you cannot join"
	MsgAlreadyActed = "you already acted this round; waiting for your opponent"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest    = "Invalid request"
	ErrInvalidRoomID     = "Invalid room ID"
	ErrInvalidSeed       = "seed must be an integer, e.g. {\"seed\": 42}"
	ErrBattleNotFound    = "No battle record yet; start one first"
	ErrFailedLoadBattle  = "Failed to load battle"
	ErrFailedSaveBattle  = "Failed to save battle"
	ErrFailedStoreAction = "Failed to store action"
	ErrAuthRequired      = "Authentication required"
	ErrInvalidSession    = "Invalid session"
)

// Logging field names
const (
	LogFieldRoomID    = "room_id"
	LogFieldActorID   = "actor_id"
	LogFieldRound     = "round"
	LogFieldRequestID = "request_id"
	LogFieldSkill     = "skill"
	LogFieldWinner    = "winner"
	LogFieldPath      = "path"
	LogFieldAddr      = "addr"
)
