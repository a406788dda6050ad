package lexcloud

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// CloudHTML serializes render descriptors as term-cloud markup: one colored
// element per term, sized by font-size percentage, with a hover title
// carrying "lemma/TAG (frequency)".
func CloudHTML(descriptors []RenderDescriptor) string {
	var b strings.Builder
	for _, d := range descriptors {
		text := html.EscapeString(d.Text)
		fmt.Fprintf(&b,
			"<font color=\"%s\" title=\"%s/%s (%d)\" style=\"font-size: %g%%\">%s</font>\n",
			d.Color, text, d.POS, d.Frequency, d.Size, text)
	}
	return b.String()
}

// LegendHTML serializes legend rows as a bordered color-key table.
func LegendHTML(rows []LegendRow) string {
	var b strings.Builder
	b.WriteString("<h2>Color Key</h2>\n")
	b.WriteString("<table cellpadding=\"3\" style=\"border-collapse:collapse\">\n")
	b.WriteString("<tr>\n")
	for _, heading := range []string{"Tag", "Name", "Color"} {
		fmt.Fprintf(&b, "<th style=\"border: 1px solid; text-align: left\">%s</th>\n", heading)
	}
	b.WriteString("</tr>\n")
	for _, row := range rows {
		b.WriteString("<tr style=\"border: 1px solid\">\n")
		for _, cell := range []string{string(row.Tag), row.Name, row.ColorName} {
			fmt.Fprintf(&b,
				"<td style=\"border: 1px solid\"><font color=\"%s\">%s</font></td>\n",
				row.Hex, html.EscapeString(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

// Section is one titled cloud within a page.
type Section struct {
	Title string
	Cloud string
}

// Page assembles the color key plus one heading-and-cloud block per section
// into a single markup fragment. Callers usually pass the result through
// Prettify, which also supplies the html/body skeleton.
func Page(legend string, sections []Section) string {
	var b strings.Builder
	b.WriteString(legend)
	for _, s := range sections {
		fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(s.Title))
		b.WriteString(s.Cloud)
	}
	return b.String()
}

// voidElements never take a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Prettify parses markup and re-renders it as an indented document. The
// parser treats the input the way a browser would, so a bare fragment comes
// back wrapped in a full html/head/body skeleton.
func Prettify(markup string) (string, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parsing markup: %w", err)
	}
	var b strings.Builder
	prettyNode(&b, doc, 0)
	return b.String(), nil
}

func prettyNode(b *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat(" ", depth)
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			prettyNode(b, c, depth)
		}
	case html.ElementNode:
		b.WriteString(indent)
		b.WriteString("<" + n.Data)
		for _, attr := range n.Attr {
			fmt.Fprintf(b, " %s=\"%s\"", attr.Key, html.EscapeString(attr.Val))
		}
		b.WriteString(">\n")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			prettyNode(b, c, depth+1)
		}
		if !voidElements[n.Data] {
			b.WriteString(indent)
			b.WriteString("</" + n.Data + ">\n")
		}
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			b.WriteString(indent)
			b.WriteString(html.EscapeString(text))
			b.WriteString("\n")
		}
	case html.DoctypeNode:
		b.WriteString("<!DOCTYPE " + n.Data + ">\n")
	}
}
