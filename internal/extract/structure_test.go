package extract

import (
	"reflect"
	"testing"

	"github.com/nao1215/pagescan/internal/model"
)

// TestHeadings tests heading extraction.
func TestHeadings(t *testing.T) {
	t.Parallel()

	t.Run("document order and attributes", func(t *testing.T) {
		t.Parallel()

		tree := mustLoad(t, `<body>
			<h1 id="top" class="hero big">Main</h1>
			<h2>Sub <em>title</em></h2>
			<h6>Deep</h6>
			<header>not a heading</header>
		</body>`)

		got := Headings(tree)

		want := []model.Heading{
			{Level: 1, Text: "Main", ID: "top", Classes: []string{"hero", "big"}},
			{Level: 2, Text: "Sub title"},
			{Level: 6, Text: "Deep"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Headings() = %+v, want %+v", got, want)
		}
	})

	t.Run("no headings", func(t *testing.T) {
		t.Parallel()

		if got := Headings(mustLoad(t, `<body><p>x</p></body>`)); len(got) != 0 {
			t.Errorf("Headings() = %d entries, want 0", len(got))
		}
	})
}

// TestHeadingLevel tests heading tag recognition.
func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want int
	}{
		{tag: "h1", want: 1},
		{tag: "h6", want: 6},
		{tag: "h7", want: 0},
		{tag: "h0", want: 0},
		{tag: "header", want: 0},
		{tag: "p", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			if got := headingLevel(tt.tag); got != tt.want {
				t.Errorf("headingLevel(%q) = %d, want %d", tt.tag, got, tt.want)
			}
		})
	}
}

// TestNavigation tests nav summarization.
func TestNavigation(t *testing.T) {
	t.Parallel()

	t.Run("counts navs and their links", func(t *testing.T) {
		t.Parallel()

		tree := mustLoad(t, `<body>
			<nav><a href="/">Home</a><a href="/about">About</a></nav>
			<nav><a href="/blog">Blog</a></nav>
			<a href="/outside">not counted</a>
		</body>`)

		got := Navigation(tree)

		if !got.Present {
			t.Error("Present = false, want true")
		}
		if got.Count != 2 {
			t.Errorf("Count = %d, want 2", got.Count)
		}
		if got.LinkCount != 3 {
			t.Errorf("LinkCount = %d, want 3", got.LinkCount)
		}
	})

	t.Run("absent nav", func(t *testing.T) {
		t.Parallel()

		got := Navigation(mustLoad(t, `<body><p>x</p></body>`))

		if got.Present || got.Count != 0 || got.LinkCount != 0 {
			t.Errorf("Navigation() = %+v, want zero value", got)
		}
	})
}

// TestSections tests sectioning element extraction.
func TestSections(t *testing.T) {
	t.Parallel()

	tree := mustLoad(t, `<body>
		<main id="content"><h1>Title</h1></main>
		<section id="a"><h2>A</h2><p>text</p></section>
		<article><p>no heading here</p></article>
	</body>`)

	got := Sections(tree)

	want := []model.Section{
		{Tag: "main", ID: "content", HasHeading: true},
		{Tag: "section", ID: "a", HasHeading: true},
		{Tag: "article", HasHeading: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sections() = %+v, want %+v", got, want)
	}
}

// TestFooterInfo tests footer heuristics.
func TestFooterInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want model.Footer
	}{
		{
			name: "no footer",
			html: `<body><p>x</p></body>`,
			want: model.Footer{},
		},
		{
			name: "copyright symbol",
			html: `<body><footer>© 2026 Example Inc.</footer></body>`,
			want: model.Footer{Present: true, HasCopyright: true},
		},
		{
			name: "copyright word with parenthesized year",
			html: `<body><footer>(c) 2026 Example</footer></body>`,
			want: model.Footer{Present: true, HasCopyright: true},
		},
		{
			name: "contact info and links",
			html: `<body><footer>Contact us: <a href="mailto:x@example.com">email</a> <a href="/phone">phone</a></footer></body>`,
			want: model.Footer{Present: true, LinkCount: 2, HasContactInfo: true},
		},
		{
			name: "plain footer",
			html: `<body><footer>just text</footer></body>`,
			want: model.Footer{Present: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FooterInfo(mustLoad(t, tt.html)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FooterInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
