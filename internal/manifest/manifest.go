// Package manifest holds the harness configuration: which paths the
// project tree must contain, which toolchain binaries and toolkit
// packages must be present, and where the build artifacts land.
//
// The fixed lists live here as data rather than inside the checks, so
// adding a required artifact is a data change, not a logic change.
package manifest

// ToolProbe names a toolchain binary and the command that verifies it.
type ToolProbe struct {
	Name  string `yaml:"name"`
	Probe string `yaml:"probe"`
}

// Manifest is the full harness configuration.
type Manifest struct {
	// RequiredPaths are project-root-relative paths that must exist for
	// the file structure check to pass.
	RequiredPaths []string `yaml:"required_paths"`
	// Tools are the toolchain binaries probed by the dependency check.
	Tools []ToolProbe `yaml:"tools"`
	// ToolkitPackages are queried via "pkg-config --exists".
	ToolkitPackages []string `yaml:"toolkit_packages"`
	// BuildDir is the build output directory, relative to project root.
	// The harness owns it and destroys it on every configure check.
	BuildDir string `yaml:"build_dir"`
	// Executable is the artifact name expected inside BuildDir.
	Executable string `yaml:"executable"`
	// EntrySource is the entry-point source file that must appear in the
	// compilation database.
	EntrySource string `yaml:"entry_source"`
}

// Default returns the built-in configuration for the OpenRW level editor
// project tree.
func Default() *Manifest {
	return &Manifest{
		RequiredPaths: []string{
			"CMakeLists.txt",
			"README.md",
			"build.sh",
			"src/main.cpp",
			"src/common/types.h",
			"src/entity_system.h",
			"src/scene_manager.h",
			"src/viewport/viewport_widget.h",
			"src/viewport/camera_controller.h",
			"src/ui/property_inspector.h",
			"src/ui/asset_browser.h",
			"src/ui/world_outliner.h",
			"src/ui/main_window.h",
			"src/mission/mission_editor.h",
			"src/mission/mission_node.h",
			"src/file_formats/dff_parser.h",
			"src/file_formats/txd_parser.h",
			"src/file_formats/ipl_parser.h",
			"src/file_formats/ide_parser.h",
			"src/file_formats/dat_parser.h",
		},
		Tools: []ToolProbe{
			{Name: "cmake", Probe: "cmake --version"},
			{Name: "make", Probe: "make --version"},
			{Name: "g++", Probe: "g++ --version"},
			{Name: "pkg-config", Probe: "pkg-config --version"},
		},
		ToolkitPackages: []string{
			"Qt5Core",
			"Qt5Widgets",
			"Qt5OpenGL",
		},
		BuildDir:    "build",
		Executable:  "openrw_editor",
		EntrySource: "main.cpp",
	}
}
