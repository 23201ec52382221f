package envvar

const (
	// LightpathEnv is the environment variable used to determine the environment
	LightpathEnv = "LIGHTPATH_ENV"

	// LightpathLibraryPath is the environment variable used to locate the model library file
	LightpathLibraryPath = "LIGHTPATH_LIBRARY_PATH"
)
