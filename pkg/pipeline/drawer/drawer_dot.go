package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-textpipe/pkg/pipeline/measure"
	"github.com/askiada/go-textpipe/pkg/pipeline/model"
)

// DOTDrawer is a drawer that creates a Graphviz DOT file with the pipeline graph.
type DOTDrawer struct {
	graph    graph.Graph[string, string]
	steps    map[string]struct{}
	fileName string
}

// NewDOTDrawer creates a new DOT drawer writing to fileName.
func NewDOTDrawer(fileName string) *DOTDrawer {
	return &DOTDrawer{
		fileName: fileName,
		graph:    graph.New(graph.StringHash, graph.Directed()),
		steps:    make(map[string]struct{}),
	}
}

// AddStep adds a step to the pipeline graph. Adding the same step twice is a no-op.
func (d *DOTDrawer) AddStep(name string) error {
	if _, ok := d.steps[name]; ok {
		return nil
	}

	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrap(err, "unable to add vertex")
	}

	d.steps[name] = struct{}{}

	return nil
}

// AddLink adds a link between parent and children steps.
func (d *DOTDrawer) AddLink(parentName, childrenName string) error {
	err := d.graph.AddEdge(parentName, childrenName)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childrenName)
	}

	return nil
}

// Draw creates the DOT file with the pipeline graph.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	err = d.Render(file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.fileName)
	}

	return nil
}

// Render writes the DOT description of the pipeline graph to wrt.
func (d *DOTDrawer) Render(wrt io.Writer) error {
	return dot(d.graph, wrt)
}

// SetTotalTime sets the total time for the step.
func (d *DOTDrawer) SetTotalTime(stepName string, startTime time.Time) error {
	_, properties, err := d.graph.VertexWithProperties(stepName)
	if err != nil {
		return errors.Wrap(err, "unable to get end vertex properties")
	}

	properties.Attributes["xlabel"] = round(time.Since(startTime)).String()

	return nil
}

const maxRGB = 240

// AddMeasure adds measure to drawer.
// Edges are coloured from blue (fastest transport) to red (slowest transport).
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	allChanElapsed := make(map[time.Duration]string)
	sortedAllChanElapsed := []time.Duration{}

	for _, step := range msr.AllMetrics() {
		for _, info := range step.AVGTransportDuration() {
			if info.Elapsed == 0 {
				continue
			}

			if _, ok := allChanElapsed[info.Elapsed]; ok {
				continue
			}

			allChanElapsed[info.Elapsed] = ""

			sortedAllChanElapsed = append(sortedAllChanElapsed, info.Elapsed)
		}
	}

	if len(sortedAllChanElapsed) > 0 {
		sort.Slice(sortedAllChanElapsed, func(i, j int) bool {
			return sortedAllChanElapsed[i] > sortedAllChanElapsed[j]
		})

		maxValue := sortedAllChanElapsed[0]
		minValue := sortedAllChanElapsed[len(sortedAllChanElapsed)-1]

		for curr := range allChanElapsed {
			fraction := 1.0
			if maxValue > minValue {
				fraction = float64(curr-minValue) / float64(maxValue-minValue)
			}

			red := maxRGB * fraction
			blue := maxRGB - maxRGB*fraction

			colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
			if err != nil {
				return errors.Wrap(err, "unable to get colour")
			}

			allChanElapsed[curr] = colour.ToHEX().String()
		}
	}

	err := d.updateMetrics(msr, allChanElapsed)
	if err != nil {
		return errors.Wrap(err, "unable to update metrics")
	}

	return nil
}

func (d *DOTDrawer) updateMetrics(msr measure.Measure, allChanElapsed map[time.Duration]string) error {
	for name, step := range msr.AllMetrics() {
		_, properties, err := d.graph.VertexWithProperties(name)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		stepAvg := step.AVGDuration()
		if stepAvg != 0 {
			properties.Attributes["xlabel"] = stepAvg.String()
		}

		if step.GetTotalDuration() > 0 && name != model.EndStep.Details.Name {
			properties.Attributes["xlabel"] += ", end: " + round(step.GetTotalDuration()).String()
		}

		for inputStep, info := range step.AVGTransportDuration() {
			if info.Elapsed == 0 {
				continue
			}

			err := d.graph.UpdateEdge(inputStep, name,
				graph.EdgeAttribute("label", info.Elapsed.String()),
				graph.EdgeAttribute("fontcolor", "blue"),
				graph.EdgeAttribute("color", allChanElapsed[info.Elapsed]), //nolint
			)
			if err != nil {
				return errors.Wrap(err, "unable to update edge")
			}
		}
	}

	return nil
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		return d.Round(time.Millisecond)
	case d > time.Millisecond:
		return d.Round(time.Microsecond)
	default:
		return d
	}
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer) error {
	desc, err := generateDOT(g)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T]) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]K, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}

	sort.Slice(vertices, func(i, j int) bool {
		return fmt.Sprint(vertices[i]) < fmt.Sprint(vertices[j])
	})

	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))

		for k, v := range sourceProperties.Attributes {
			sourceAttributes[k] = v
		}

		if xlabel, ok := sourceAttributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceAttributes, "xlabel")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		adjacencies := adjacencyMap[vertex]

		targets := make([]K, 0, len(adjacencies))
		for adjacency := range adjacencies {
			targets = append(targets, adjacency)
		}

		sort.Slice(targets, func(i, j int) bool {
			return fmt.Sprint(targets[i]) < fmt.Sprint(targets[j])
		})

		for _, adjacency := range targets {
			edge := adjacencies[adjacency]
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
