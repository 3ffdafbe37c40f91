package annotate

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Kind
	}{
		{"java file", "src/main/java/Foo.java", Java},
		{"xml file", "pom.xml", XML},
		{"xsl file", "transform.xsl", XML},
		{"html file", "docs/index.html", HTML},
		{"htm file", "docs/index.htm", HTML},
		{"css file", "assets/site.css", CSS},
		{"js file", "assets/app.js", JavaScript},
		{"apt file", "docs/guide.apt", APT},
		{"properties file", "conf/app.properties", Properties},
		{"text file", "notes.txt", Unknown},
		{"no extension", "Makefile", Unknown},
		{"empty path", "", Unknown},
		{"uppercase extension is not matched", "Foo.JAVA", Unknown},
		{"extension embedded in name", "java.backup", Unknown},
		{"dotfile with known suffix", ".properties", Properties},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Unknown, "unknown"},
		{Java, "java"},
		{XML, "xml"},
		{Properties, "properties"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
