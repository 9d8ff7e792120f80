package dom

import (
	"testing"
)

// TestLoad tests HTML loading and tree conversion.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("parses well-formed html", func(t *testing.T) {
		t.Parallel()

		tree, err := Load("<html><head><title>Hi</title></head><body><p>Hello</p></body></html>", Options{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		title := tree.First("title")
		if title == nil {
			t.Fatal("First(title) = nil, want node")
		}
		if got := title.Text(); got != "Hi" {
			t.Errorf("title text = %q, want %q", got, "Hi")
		}
		if tree.Document() == nil {
			t.Error("Document() = nil, want goquery handle for HTML input")
		}
	})

	t.Run("repairs malformed html instead of failing", func(t *testing.T) {
		t.Parallel()

		tree, err := Load("<p>unclosed <b>bold", Options{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if tree.First("b") == nil {
			t.Error("First(b) = nil, want repaired element")
		}
		// Structural repair synthesizes the html/head/body scaffolding.
		if tree.First("body") == nil {
			t.Error("First(body) = nil, want synthesized element")
		}
	})

	t.Run("drops comments and doctype", func(t *testing.T) {
		t.Parallel()

		tree, err := Load("<!DOCTYPE html><!-- note --><html><body><p>x</p></body></html>", Options{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		tree.Root().Walk(func(n *Node) {
			if n.Type == TextNode && n.Data == " note " {
				t.Error("comment text survived loading")
			}
		})
	})

	t.Run("collapses whitespace by default", func(t *testing.T) {
		t.Parallel()

		tree, err := Load("<p>a \n\t b</p>", Options{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		p := tree.First("p")
		if p == nil {
			t.Fatal("First(p) = nil")
		}
		if len(p.Children) != 1 || p.Children[0].Data != "a b" {
			t.Errorf("text node data = %q, want %q", p.Children[0].Data, "a b")
		}
	})

	t.Run("preserves whitespace on request", func(t *testing.T) {
		t.Parallel()

		tree, err := Load("<pre>a \n b</pre>", Options{PreserveWhitespace: true})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		pre := tree.First("pre")
		if pre == nil {
			t.Fatal("First(pre) = nil")
		}
		if len(pre.Children) != 1 || pre.Children[0].Data != "a \n b" {
			t.Errorf("text node data = %q, want raw %q", pre.Children[0].Data, "a \n b")
		}
	})

	t.Run("decodes entities", func(t *testing.T) {
		t.Parallel()

		tree, err := Load("<p>fish &amp; chips</p>", Options{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got := tree.First("p").Text(); got != "fish & chips" {
			t.Errorf("text = %q, want %q", got, "fish & chips")
		}
	})

	t.Run("lowercases tags and attribute keys", func(t *testing.T) {
		t.Parallel()

		tree, err := Load(`<DIV CLASS="hero">x</DIV>`, Options{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		div := tree.First("div")
		if div == nil {
			t.Fatal("First(div) = nil, want lowercased element")
		}
		if got := div.AttrValue("class"); got != "hero" {
			t.Errorf("class = %q, want %q", got, "hero")
		}
	})
}

// TestLoadXMLMode tests the strict-shape XML loader.
func TestLoadXMLMode(t *testing.T) {
	t.Parallel()

	t.Run("parses nested elements", func(t *testing.T) {
		t.Parallel()

		tree, err := Load(`<doc><item id="1">first</item><item id="2">second</item></doc>`, Options{XMLMode: true})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		items := tree.FindAll("item")
		if len(items) != 2 {
			t.Fatalf("FindAll(item) = %d nodes, want 2", len(items))
		}
		if got := items[1].AttrValue("id"); got != "2" {
			t.Errorf("second item id = %q, want %q", got, "2")
		}
		if got := items[0].Text(); got != "first" {
			t.Errorf("first item text = %q, want %q", got, "first")
		}
	})

	t.Run("no goquery handle in xml mode", func(t *testing.T) {
		t.Parallel()

		tree, err := Load("<doc/>", Options{XMLMode: true})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if tree.Document() != nil {
			t.Error("Document() != nil, want nil for XML input")
		}
	})

	t.Run("malformed xml is tolerated in non-strict mode", func(t *testing.T) {
		t.Parallel()

		tree, err := Load("<doc><open>text</doc>", Options{XMLMode: true})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if tree.First("open") == nil {
			t.Error("First(open) = nil, want element despite missing close tag")
		}
	})
}
