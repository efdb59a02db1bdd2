package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	gopadxVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	for _, name := range []string{"padimg", "padgen"} {
		app := NewAppBuild(name, "cmd/"+name, gopadxVersion)
		app.Build(func(gb *GoBuild) {
			gb.
				StripDebugSymbols().
				CgoEnabled(false)
		})
		app.Variant("windows", "amd64")
		app.Variant("linux", "amd64")
		app.Variant("linux", "arm64")
		app.Variant("darwin", "amd64")
		app.Variant("darwin", "arm64")
		b.ImportApp(app)
	}

	b.Execute()
}
