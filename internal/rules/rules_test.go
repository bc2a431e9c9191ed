package rules

import (
	"strings"
	"testing"

	"speclint/internal/diag"
	"speclint/internal/lexer"
	"speclint/internal/parser"
	"speclint/internal/source"
)

func lintWith(t *testing.T, src string, cfg Config) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("widget_spec.rb", []byte(src)))
	bag := diag.NewBag(100)
	rep := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: rep})
	tree := parser.ParseFile(lx, parser.Options{Reporter: rep})
	if bag.Len() != 0 {
		t.Fatalf("parse diagnostics before rules: %v", bag.Items())
	}

	NewEngine(cfg).Run(tree, file, nil, rep)
	bag.Sort()
	return bag.Items()
}

func lintSource(t *testing.T, src string) []diag.Diagnostic {
	t.Helper()
	return lintWith(t, src, DefaultConfig())
}

func countCode(diags []diag.Diagnostic, code diag.Code) int {
	n := 0
	for _, d := range diags {
		if d.Code == code {
			n++
		}
	}
	return n
}

func expectOnly(t *testing.T, diags []diag.Diagnostic, code diag.Code) diag.Diagnostic {
	t.Helper()
	if len(diags) != 1 || diags[0].Code != code {
		t.Fatalf("want exactly one %s, got %v", code.Name(), diags)
	}
	return diags[0]
}

func TestSiblingGroupsWithoutBlankLines(t *testing.T) {
	// N соседних групп без разделителей дают N-1 диагностик
	diags := lintSource(t, `describe "Alpha" do
end
describe "Beta" do
end
describe "Gamma" do
end
`)
	if got := countCode(diags, diag.StyBlankLineBetweenSiblings); got != 2 {
		t.Fatalf("blank-line-between-sibling-groups = %d, want 2; all: %v", got, diags)
	}
}

func TestSiblingGroupsSeparatedByOneBlankLine(t *testing.T) {
	diags := lintSource(t, `describe "Alpha" do
end

describe "Beta" do
end
`)
	if got := countCode(diags, diag.StyBlankLineBetweenSiblings); got != 0 {
		t.Fatalf("clean separation flagged: %v", diags)
	}
}

func TestSiblingGroupsWithTwoBlankLines(t *testing.T) {
	diags := lintSource(t, `describe "Alpha" do
end


describe "Beta" do
end
`)
	if got := countCode(diags, diag.StyBlankLineBetweenSiblings); got != 1 {
		t.Fatalf("two blank lines = %d diagnostics, want 1", got)
	}
}

func TestBlankLineAfterGroupOpen(t *testing.T) {
	diags := lintSource(t, `describe "Thing" do

  it "works" do
    expect(1).to eq(1)
  end
end
`)
	expectOnly(t, diags, diag.StyBlankLineAfterGroupOpen)
}

func TestNoBlankLineAfterGroupOpenIsClean(t *testing.T) {
	diags := lintSource(t, `describe "Thing" do
  it "works" do
    expect(1).to eq(1)
  end
end
`)
	if len(diags) != 0 {
		t.Fatalf("clean file flagged: %v", diags)
	}
}

func TestBlankLineAfterBindingBlock(t *testing.T) {
	diags := lintSource(t, `describe "Thing" do
  let(:a) { 1 }
  it "works" do
    expect(a).to eq(1)
  end
end
`)
	expectOnly(t, diags, diag.StyBlankLineAfterBindingBlock)

	clean := lintSource(t, `describe "Thing" do
  let(:a) { 1 }

  it "works" do
    expect(a).to eq(1)
  end
end
`)
	if len(clean) != 0 {
		t.Fatalf("separated declaration block flagged: %v", clean)
	}
}

func TestHookInterleavedWithBindings(t *testing.T) {
	diags := lintSource(t, `describe "Thing" do
  let(:a) { 1 }

  before { prepare }

  let(:b) { 2 }

  it "works" do
    expect(a).to eq(b)
  end
end
`)
	expectOnly(t, diags, diag.StyBindingGrouping)
}

func TestExplicitEachScope(t *testing.T) {
	diags := lintSource(t, `describe "Thing" do
  before(:each) { prepare }

  it "works" do
    expect(1).to eq(1)
  end
end
`)
	d := expectOnly(t, diags, diag.StyExplicitEachRedundant)
	if len(d.Fixes) != 1 {
		t.Fatalf("fixes = %d, want a removal suggestion", len(d.Fixes))
	}

	clean := lintSource(t, `describe "Thing" do
  before { prepare }

  it "works" do
    expect(1).to eq(1)
  end
end
`)
	if len(clean) != 0 {
		t.Fatalf("plain before flagged: %v", clean)
	}
}

func TestArticleSummaryScenario(t *testing.T) {
	diags := lintSource(t, `describe "Article" do
  describe "#summary" do
    it "should return the summary" do
      expect(article.summary).to eq("text")
    end
  end
end
`)
	d := expectOnly(t, diags, diag.StyShouldPrefixInExample)
	if d.Code.Name() != "should-prefix-in-example" {
		t.Errorf("rule name = %q", d.Code.Name())
	}
}

func TestShouldntPrefixAlsoFlagged(t *testing.T) {
	diags := lintSource(t, `describe "Article" do
  it "shouldn't expose the draft" do
    expect(article.draft?).to be(false)
  end
end
`)
	if countCode(diags, diag.StyShouldPrefixInExample) != 1 {
		t.Fatalf("shouldn't prefix not flagged: %v", diags)
	}
}

func TestOneExpectationIsClean(t *testing.T) {
	diags := lintSource(t, `describe "Calc" do
  it "adds numbers" do
    expect(calc.add(1, 2)).to eq(3)
  end
end
`)
	if len(diags) != 0 {
		t.Fatalf("single expectation flagged: %v", diags)
	}
}

func TestTwoExpectationsFlaggedOnce(t *testing.T) {
	diags := lintSource(t, `describe "Calc" do
  it "adds numbers" do
    expect(calc.add(1, 2)).to eq(3)
    expect(calc.add(2, 2)).to eq(4)
  end
end
`)
	d := expectOnly(t, diags, diag.StyOneExpectationPerExample)
	if !strings.Contains(d.Message, "2 expectations") {
		t.Errorf("message = %q", d.Message)
	}
	if len(d.Notes) != 1 {
		t.Errorf("notes = %d, want a pointer to the first expectation", len(d.Notes))
	}
}

func TestAggregateFailuresSuppressesExpectationRule(t *testing.T) {
	diags := lintSource(t, `describe "Calc" do
  it "adds numbers", :aggregate_failures do
    expect(calc.add(1, 2)).to eq(3)
    expect(calc.add(2, 2)).to eq(4)
  end
end
`)
	if len(diags) != 0 {
		t.Fatalf("aggregate_failures example flagged: %v", diags)
	}
}

func TestContextDescriptionPrefixScenario(t *testing.T) {
	diags := lintSource(t, `describe "User" do
  context "the display name is not present" do
    it "falls back to the email" do
      expect(user.display_name).to eq(user.email)
    end
  end
end
`)
	expectOnly(t, diags, diag.StyContextDescriptionPrefix)
}

func TestContextPrefixVariantsAreClean(t *testing.T) {
	for _, desc := range []string{"when the user is new", "with a stale cache", "without a password"} {
		diags := lintSource(t, `describe "User" do
  context "`+desc+`" do
    it "behaves" do
      expect(user).to be
    end
  end

  context "when the record is not persisted" do
    it "behaves" do
      expect(user).to be
    end
  end
end
`)
		if countCode(diags, diag.StyContextDescriptionPrefix) != 0 {
			t.Errorf("%q flagged: %v", desc, diags)
		}
	}
}

func TestConditionalContextWithoutNegativeSibling(t *testing.T) {
	diags := lintSource(t, `describe "User" do
  context "when the account is active" do
    it "allows login" do
      expect(user.can_login?).to be(true)
    end
  end
end
`)
	d := expectOnly(t, diags, diag.StyContextMissingNegativeCase)
	if d.Severity != diag.SevInfo {
		t.Errorf("severity = %v, want info", d.Severity)
	}
}

func TestConditionalContextWithNegativeSibling(t *testing.T) {
	diags := lintSource(t, `describe "User" do
  context "when the account is active" do
    it "allows login" do
      expect(user.can_login?).to be(true)
    end
  end

  context "when the account is not active" do
    it "rejects login" do
      expect(user.can_login?).to be(false)
    end
  end
end
`)
	if countCode(diags, diag.StyContextMissingNegativeCase) != 0 {
		t.Fatalf("negated sibling not recognized: %v", diags)
	}
}

func TestConditionalSuffixInDescription(t *testing.T) {
	diags := lintSource(t, `describe "User" do
  it "returns nil if the record is missing" do
    expect(user.find(0)).to be_nil
  end
end
`)
	expectOnly(t, diags, diag.StyExampleConditionalSuffix)
}

func TestDescriptionLengthBoundary(t *testing.T) {
	at := strings.Repeat("a", 60)
	over := strings.Repeat("a", 61)

	clean := lintSource(t, `describe "Thing" do
  it "`+at+`" do
    expect(1).to eq(1)
  end
end
`)
	if len(clean) != 0 {
		t.Fatalf("60-character description flagged: %v", clean)
	}

	diags := lintSource(t, `describe "Thing" do
  it "`+over+`" do
    expect(1).to eq(1)
  end
end
`)
	d := expectOnly(t, diags, diag.StyExampleDescriptionLength)
	if !strings.Contains(d.Message, "61") || !strings.Contains(d.Message, "limit 60") {
		t.Errorf("message = %q", d.Message)
	}
}

func TestDescriptionLengthCustomLimit(t *testing.T) {
	cfg := Config{MaxDescriptionLength: 20}
	diags := lintWith(t, `describe "Thing" do
  it "a description well over twenty characters" do
    expect(1).to eq(1)
  end
end
`, cfg)
	if countCode(diags, diag.StyExampleDescriptionLength) != 1 {
		t.Fatalf("custom limit ignored: %v", diags)
	}
}

func TestIteratorGeneratedExamples(t *testing.T) {
	diags := lintSource(t, `describe "Statuses" do
  [:draft, :published].each do |status|
    it "supports the status" do
      expect(statuses).to include(status)
    end
  end
end
`)
	expectOnly(t, diags, diag.StyIteratorGeneratedExamples)
}

func TestIteratorWithoutExamplesIsClean(t *testing.T) {
	diags := lintSource(t, `describe "Statuses" do
  it "lists them all" do
    expect([:draft, :published].map(&:to_s)).to eq(statuses)
  end
end
`)
	if countCode(diags, diag.StyIteratorGeneratedExamples) != 0 {
		t.Fatalf("literal iteration without examples flagged: %v", diags)
	}
}

func TestSubjectAfterHookScenario(t *testing.T) {
	diags := lintSource(t, `describe "Widget" do
  before { prepare }
  subject { described_class.new }
end
`)
	d := expectOnly(t, diags, diag.StySubjectNotLeading)
	if d.Code.Name() != "subject-not-leading" {
		t.Errorf("rule name = %q", d.Code.Name())
	}
}

func TestLeadingSubjectIsClean(t *testing.T) {
	diags := lintSource(t, `describe "Widget" do
  subject { described_class.new }

  it "exists" do
    expect(subject).to be
  end
end
`)
	if len(diags) != 0 {
		t.Fatalf("leading subject flagged: %v", diags)
	}
}

func TestBareMethodNameInDescribe(t *testing.T) {
	diags := lintSource(t, `describe "Calculator" do
  describe "summary" do
    it "returns text" do
      expect(calc.summary).to eq("text")
    end
  end
end
`)
	d := expectOnly(t, diags, diag.StyMethodDescriptionPrefix)
	if d.Severity != diag.SevInfo {
		t.Errorf("severity = %v, want info", d.Severity)
	}

	clean := lintSource(t, `describe "Calculator" do
  describe "#summary" do
    it "returns text" do
      expect(calc.summary).to eq("text")
    end
  end
end
`)
	if len(clean) != 0 {
		t.Fatalf("prefixed method name flagged: %v", clean)
	}
}
