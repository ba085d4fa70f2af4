// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Board    BoardConfig    `yaml:"board"`
	Scene    SceneConfig    `yaml:"scene"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	ShadowMap  int  `yaml:"shadow_map_size"` // 0 disables shadows
}

// BoardConfig holds hex board layout settings.
type BoardConfig struct {
	TileRadius float64 `yaml:"tile_radius"`
	Rings      int     `yaml:"rings"`
	Seed       uint64  `yaml:"seed"` // 0 = seed from the clock
	ShowEdges  bool    `yaml:"show_edges"`
}

// SceneConfig holds camera, fog and vehicle placement settings.
type SceneConfig struct {
	CameraFOV        float32      `yaml:"camera_fov"` // degrees
	CameraNear       float32      `yaml:"camera_near"`
	CameraFar        float32      `yaml:"camera_far"`
	CameraPosition   [3]float32   `yaml:"camera_position"`
	FogNear          float32      `yaml:"fog_near"`
	FogFar           float32      `yaml:"fog_far"`
	VehicleClones    [][3]float32 `yaml:"vehicle_clones"`
	ShowLightHelpers bool         `yaml:"show_light_helpers"`
	ShowBoardBounds  bool         `yaml:"show_board_bounds"`
}

// AssetsConfig holds asset locations, relative to Root.
type AssetsConfig struct {
	Root         string            `yaml:"root"`
	Textures     map[string]string `yaml:"textures"` // tile kind name -> image path
	VehicleModel string            `yaml:"vehicle_model"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			ShadowMap:  2048,
		},
		Board: BoardConfig{
			TileRadius: 7,
			Rings:      6,
			Seed:       0,
		},
		Scene: SceneConfig{
			CameraFOV:      30,
			CameraNear:     1,
			CameraFar:      5000,
			CameraPosition: [3]float32{50, 40, 15},
			FogNear:        1,
			FogFar:         5000,
			VehicleClones: [][3]float32{
				{0, 0, 0},
				{3, 0, 3},
				{3, 0, -3},
			},
			ShowLightHelpers: true,
		},
		Assets: AssetsConfig{
			Root: "assets",
			Textures: map[string]string{
				"grass":  "images/grass.png",
				"forest": "images/forest.png",
				"wheat":  "images/wheat.png",
				"brick":  "images/brick.png",
				"stone":  "images/stone.png",
			},
			VehicleModel: "panzer-4-h.json",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
