package parser

import (
	"testing"

	"speclint/internal/ast"
	"speclint/internal/diag"
	"speclint/internal/lexer"
	"speclint/internal/source"
)

func parseSrc(t *testing.T, src string) (*ast.SpecFile, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("widget_spec.rb", []byte(src)))
	bag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tree := ParseFile(lx, Options{Reporter: diag.BagReporter{Bag: bag}})
	return tree, bag
}

func parseClean(t *testing.T, src string) *ast.SpecFile {
	t.Helper()
	tree, bag := parseSrc(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	return tree
}

func onlyGroup(t *testing.T, nodes []ast.Node) *ast.GroupNode {
	t.Helper()
	if len(nodes) != 1 {
		t.Fatalf("want exactly one node, got %d", len(nodes))
	}
	g, ok := nodes[0].(*ast.GroupNode)
	if !ok {
		t.Fatalf("want a group node, got %T", nodes[0])
	}
	return g
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestHeredocExpectationArgument(t *testing.T) {
	tree := parseClean(t, `describe "Report" do
  it "renders the summary" do
    expect(report.render).to eq(<<~TEXT)
      Summary line
    TEXT
  end
end
`)

	root := onlyGroup(t, tree.Roots)
	ex, ok := root.Nodes[0].(*ast.ExampleNode)
	if !ok {
		t.Fatalf("want an example node, got %T", root.Nodes[0])
	}
	if got := len(ex.Expectations); got != 1 {
		t.Errorf("expectations = %d, want 1", got)
	}
}

func TestNestedGroups(t *testing.T) {
	tree := parseClean(t, `describe "User" do
  context "when admin" do
    it "grants access" do
      expect(user.admin?).to be(true)
    end
  end
end
`)

	root := onlyGroup(t, tree.Roots)
	if root.GroupKind != ast.GroupDescribe || root.Description != "User" {
		t.Fatalf("root = %v %q", root.GroupKind, root.Description)
	}
	if root.Depth != 0 {
		t.Errorf("root depth = %d", root.Depth)
	}
	if root.StartLine() != 1 || root.EndLine() != 7 {
		t.Errorf("root lines = %d..%d, want 1..7", root.StartLine(), root.EndLine())
	}

	child := onlyGroup(t, root.Nodes)
	if child.GroupKind != ast.GroupContext || child.Description != "when admin" {
		t.Fatalf("child = %v %q", child.GroupKind, child.Description)
	}
	if child.Depth != 1 {
		t.Errorf("child depth = %d", child.Depth)
	}

	if len(child.Nodes) != 1 {
		t.Fatalf("context children = %d", len(child.Nodes))
	}
	e, ok := child.Nodes[0].(*ast.ExampleNode)
	if !ok {
		t.Fatalf("want example node, got %T", child.Nodes[0])
	}
	if e.Description != "grants access" || !e.HasDescription {
		t.Errorf("example description = %q", e.Description)
	}
	if len(e.Expectations) != 1 {
		t.Errorf("expectations = %d, want 1", len(e.Expectations))
	}
}

func TestExpectationCounting(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"two plain expects", `
      expect(record.name).to eq("x")
      expect(record.email).to eq("y")
`, 2},
		{"block expectation counts once", `
      expect { record.save! }.to raise_error(ActiveRecord::RecordInvalid)
`, 1},
		{"legacy should chain", `
      record.should be_valid
`, 1},
		{"aggregate_failures block recursed", `
      aggregate_failures do
        expect(record.name).to eq("x")
        expect(record.email).to eq("y")
      end
`, 2},
		{"setup line is not an expectation", `
      record = build(:record)
      expect(record).to be_valid
`, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := "describe \"Record\" do\n  it \"checks\" do" + tc.body + "  end\nend\n"
			tree := parseClean(t, src)
			examples := tree.Examples()
			if len(examples) != 1 {
				t.Fatalf("examples = %d", len(examples))
			}
			if got := len(examples[0].Expectations); got != tc.want {
				t.Fatalf("expectations = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestOneLinerExample(t *testing.T) {
	tree := parseClean(t, `describe "Record" do
  subject { build(:record) }

  it { is_expected.to be_valid }
end
`)
	examples := tree.Examples()
	if len(examples) != 1 {
		t.Fatalf("examples = %d", len(examples))
	}
	e := examples[0]
	if e.HasDescription {
		t.Error("one-liner must have no description")
	}
	if len(e.Expectations) != 1 {
		t.Errorf("expectations = %d, want 1", len(e.Expectations))
	}
}

func TestAggregateFailuresTag(t *testing.T) {
	tree := parseClean(t, `describe "Record" do
  it "checks both fields", :aggregate_failures do
    expect(record.name).to eq("x")
    expect(record.email).to eq("y")
  end
end
`)
	e := tree.Examples()[0]
	if !e.AggregateFailures {
		t.Fatal("tag on the example was not picked up")
	}
}

func TestAggregateFailuresInheritedFromGroup(t *testing.T) {
	tree := parseClean(t, `describe "Record", aggregate_failures: true do
  it "checks both fields" do
    expect(record.name).to eq("x")
    expect(record.email).to eq("y")
  end
end
`)
	e := tree.Examples()[0]
	if !e.AggregateFailures {
		t.Fatal("group metadata must propagate to examples")
	}
}

func TestMetadataValueIsNotATag(t *testing.T) {
	// :model — значение метки type:, а не самостоятельный тег
	tree := parseClean(t, `describe "Record", type: :model do
  before(:each) { prepare }
end
`)
	root := onlyGroup(t, tree.Roots)
	if root.AggregateFailures {
		t.Error("type: :model must not set aggregate_failures")
	}
	h, ok := root.Nodes[0].(*ast.HookNode)
	if !ok {
		t.Fatalf("want hook, got %T", root.Nodes[0])
	}
	if h.Scope != ast.ScopeEach || !h.ExplicitScope {
		t.Errorf("hook scope = %v explicit=%v", h.Scope, h.ExplicitScope)
	}
}

func TestBindings(t *testing.T) {
	tree := parseClean(t, `describe "Widget" do
  subject(:widget) { described_class.new }
  let(:owner) { build(:user) }
  let!(:audit) { create(:audit) }
end
`)
	root := onlyGroup(t, tree.Roots)
	if len(root.Nodes) != 3 {
		t.Fatalf("children = %d", len(root.Nodes))
	}

	s := root.Nodes[0].(*ast.BindingNode)
	if !s.IsSubject() || s.Name != "widget" || s.Eager {
		t.Errorf("subject = kind %v name %q eager %v", s.BindingKind, s.Name, s.Eager)
	}
	l := root.Nodes[1].(*ast.BindingNode)
	if l.BindingKind != ast.BindingLet || l.Name != "owner" {
		t.Errorf("let = kind %v name %q", l.BindingKind, l.Name)
	}
	lb := root.Nodes[2].(*ast.BindingNode)
	if lb.BindingKind != ast.BindingLetBang || !lb.Eager {
		t.Errorf("let! = kind %v eager %v", lb.BindingKind, lb.Eager)
	}
}

func TestHookScopes(t *testing.T) {
	tree := parseClean(t, `describe "Widget" do
  before { prepare }
  before(:all) do
    seed
  end
  around { |example| example.run }
end
`)
	root := onlyGroup(t, tree.Roots)
	if len(root.Nodes) != 3 {
		t.Fatalf("children = %d", len(root.Nodes))
	}

	plain := root.Nodes[0].(*ast.HookNode)
	if plain.HookKind != ast.HookBefore || plain.Scope != ast.ScopeDefault || plain.ExplicitScope {
		t.Errorf("plain before = %v %v explicit=%v", plain.HookKind, plain.Scope, plain.ExplicitScope)
	}
	all := root.Nodes[1].(*ast.HookNode)
	if all.Scope != ast.ScopeAll || !all.ExplicitScope {
		t.Errorf("before(:all) = %v explicit=%v", all.Scope, all.ExplicitScope)
	}
	around := root.Nodes[2].(*ast.HookNode)
	if around.HookKind != ast.HookAround {
		t.Errorf("around = %v", around.HookKind)
	}
}

func TestRSpecDescribeForm(t *testing.T) {
	tree := parseClean(t, `RSpec.describe Admin::User, type: :model do
  it "exists" do
    expect(described_class).to be
  end
end
`)
	root := onlyGroup(t, tree.Roots)
	if !root.RSpecReceiver {
		t.Error("RSpec.describe receiver not recorded")
	}
	if root.ConstDescription != "Admin::User" {
		t.Errorf("const description = %q", root.ConstDescription)
	}
	if root.Description != "" {
		t.Errorf("string description = %q, want empty", root.Description)
	}
}

func TestIteratorBlockOverLiteral(t *testing.T) {
	tree := parseClean(t, `describe "Statuses" do
  [:draft, :published].each do |status|
    it "supports it" do
      expect(statuses).to include(status)
    end
  end
end
`)
	root := onlyGroup(t, tree.Roots)
	b, ok := root.Nodes[0].(*ast.BlockNode)
	if !ok {
		t.Fatalf("want block node, got %T", root.Nodes[0])
	}
	if !b.IterOverLiteral {
		t.Error("iteration over a literal receiver not detected")
	}
	if len(b.Nodes) != 1 {
		t.Fatalf("block children = %d", len(b.Nodes))
	}
	if _, ok := b.Nodes[0].(*ast.ExampleNode); !ok {
		t.Errorf("block child = %T, want example", b.Nodes[0])
	}
}

func TestDSLInsideConditional(t *testing.T) {
	// DSL-вызовы внутри условия не должны теряться
	tree := parseClean(t, `describe "Feature" do
  if ENV["FULL_SUITE"]
    it "runs the slow path" do
      expect(run_slow).to be(true)
    end
  end
end
`)
	if len(tree.Examples()) != 1 {
		t.Fatalf("examples = %d, want 1", len(tree.Examples()))
	}
}

func TestSharedExamplesBody(t *testing.T) {
	tree := parseClean(t, `shared_examples "auditable" do
  it "writes an audit row" do
    expect(audit_rows).to eq(1)
  end
end
`)
	if len(tree.Examples()) != 1 {
		t.Fatalf("examples = %d, want 1", len(tree.Examples()))
	}
	b, ok := tree.Roots[0].(*ast.BlockNode)
	if !ok {
		t.Fatalf("root = %T, want block", tree.Roots[0])
	}
	if b.Head != "shared_examples" {
		t.Errorf("head = %q", b.Head)
	}
}

func TestUnclosedGroupReported(t *testing.T) {
	_, bag := parseSrc(t, `describe "User" do
  it "works" do
    expect(1).to eq(1)
  end
`)
	if !hasCode(bag, diag.SynUnclosedBlock) {
		t.Fatalf("want SynUnclosedBlock, got %v", bag.Items())
	}
}

func TestStrayEndReported(t *testing.T) {
	_, bag := parseSrc(t, `describe "User" do
end
end
`)
	if !hasCode(bag, diag.SynUnexpectedEnd) {
		t.Fatalf("want SynUnexpectedEnd, got %v", bag.Items())
	}
}

func TestMissingDescriptionReported(t *testing.T) {
	tree, bag := parseSrc(t, `describe do
  it "still parsed" do
    expect(1).to eq(1)
  end
end
`)
	if !hasCode(bag, diag.SynMissingDescription) {
		t.Fatalf("want SynMissingDescription, got %v", bag.Items())
	}
	// разбор продолжается: тело группы не теряется
	if len(tree.Examples()) != 1 {
		t.Errorf("examples = %d, want 1", len(tree.Examples()))
	}
}

func TestGroupWithoutBlockBody(t *testing.T) {
	_, bag := parseSrc(t, `describe "User"
`)
	if !hasCode(bag, diag.SynMissingBlockBody) {
		t.Fatalf("want SynMissingBlockBody, got %v", bag.Items())
	}
}

func TestOpenLineTracksBlockOpener(t *testing.T) {
	tree := parseClean(t, `describe "User" do

  it "works" do
    expect(1).to eq(1)
  end
end
`)
	root := onlyGroup(t, tree.Roots)
	if root.OpenLine != 1 {
		t.Errorf("open line = %d, want 1", root.OpenLine)
	}
	if root.Nodes[0].StartLine() != 3 {
		t.Errorf("first child line = %d, want 3", root.Nodes[0].StartLine())
	}
}
