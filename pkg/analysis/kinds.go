package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-graphanalytics/pkg/validation"
)

// Type names an analysis.
type Type string

// Analysis types.
const (
	TypeDegreeCentrality            Type = "DegreeCentrality"
	TypeBetweennessCentrality       Type = "BetweennessCentrality"
	TypeEdgeBetweenness             Type = "EdgeBetweenness"
	TypeClosenessCentrality         Type = "ClosenessCentrality"
	TypeEigenvectorCentrality       Type = "EigenvectorCentrality"
	TypePageRank                    Type = "PageRank"
	TypeKatzCentrality              Type = "KatzCentrality"
	TypeHarmonicCentrality          Type = "HarmonicCentrality"
	TypeLouvainCommunityDetection   Type = "LouvainCommunityDetection"
	TypeModularityOptimization      Type = "ModularityOptimization"
	TypeLabelPropagation            Type = "LabelPropagation"
	TypeGirvanNewman                Type = "GirvanNewman"
	TypeSpectralClustering          Type = "SpectralClustering"
	TypeEdgeBetweennessClustering   Type = "EdgeBetweennessClustering"
	TypeShortestPaths               Type = "ShortestPaths"
	TypeAllPairsShortestPaths       Type = "AllPairsShortestPaths"
	TypeDijkstraShortestPath        Type = "DijkstraShortestPath"
	TypeBellmanFordShortestPath     Type = "BellmanFordShortestPath"
	TypeFloydWarshallShortestPath   Type = "FloydWarshallShortestPath"
	TypeConnectedComponents         Type = "ConnectedComponents"
	TypeStronglyConnectedComponents Type = "StronglyConnectedComponents"
	TypeArticulationPoints          Type = "ArticulationPoints"
	TypeBridges                     Type = "Bridges"
	TypeMinimumSpanningTree         Type = "MinimumSpanningTree"
	TypeClusteringCoefficient       Type = "ClusteringCoefficient"
	TypeNetworkDensity              Type = "NetworkDensity"
	TypeDiameter                    Type = "Diameter"
	TypeRadius                      Type = "Radius"
	TypeAssortativity               Type = "Assortativity"
	TypeSmallWorldness              Type = "SmallWorldness"
	TypeNetworkSummary              Type = "NetworkSummary"
	TypeMaximumFlow                 Type = "MaximumFlow"
	TypeMinimumCut                  Type = "MinimumCut"
	TypeNetworkMotifs               Type = "NetworkMotifs"
	TypeTriadicCensus               Type = "TriadicCensus"
	TypeFullTriadicCensus           Type = "FullTriadicCensus"
	TypeKCore                       Type = "KCore"
)

// param is a bit set of the Kind fields a Type reads.
type param uint8

const (
	paramSource param = 1 << iota
	paramTarget
	paramDamping
	paramMaxIterations
	paramAlpha
	paramK
)

var typeOrder = []Type{
	TypeDegreeCentrality,
	TypeBetweennessCentrality,
	TypeEdgeBetweenness,
	TypeClosenessCentrality,
	TypeEigenvectorCentrality,
	TypePageRank,
	TypeKatzCentrality,
	TypeHarmonicCentrality,
	TypeLouvainCommunityDetection,
	TypeModularityOptimization,
	TypeLabelPropagation,
	TypeGirvanNewman,
	TypeSpectralClustering,
	TypeEdgeBetweennessClustering,
	TypeShortestPaths,
	TypeAllPairsShortestPaths,
	TypeDijkstraShortestPath,
	TypeBellmanFordShortestPath,
	TypeFloydWarshallShortestPath,
	TypeConnectedComponents,
	TypeStronglyConnectedComponents,
	TypeArticulationPoints,
	TypeBridges,
	TypeMinimumSpanningTree,
	TypeClusteringCoefficient,
	TypeNetworkDensity,
	TypeDiameter,
	TypeRadius,
	TypeAssortativity,
	TypeSmallWorldness,
	TypeNetworkSummary,
	TypeMaximumFlow,
	TypeMinimumCut,
	TypeNetworkMotifs,
	TypeTriadicCensus,
	TypeFullTriadicCensus,
	TypeKCore,
}

var typeParams = map[Type]param{
	TypePageRank:                  paramDamping | paramMaxIterations,
	TypeKatzCentrality:            paramAlpha,
	TypeSpectralClustering:        paramK,
	TypeEdgeBetweennessClustering: paramK,
	TypeShortestPaths:             paramSource,
	TypeDijkstraShortestPath:      paramSource | paramTarget,
	TypeBellmanFordShortestPath:   paramSource,
	TypeMaximumFlow:               paramSource | paramTarget,
	TypeMinimumCut:                paramSource | paramTarget,
	TypeKCore:                     paramK,
}

// AllTypes lists every known analysis type in a stable order.
func AllTypes() []Type {
	return append([]Type(nil), typeOrder...)
}

func known(t Type) bool {
	for _, k := range typeOrder {
		if k == t {
			return true
		}
	}
	return false
}

// Kind selects an analysis and its parameters. Kinds are comparable and,
// after normalisation, used directly as cache keys.
type Kind struct {
	Type          Type    `json:"type"`
	Source        string  `json:"source,omitempty"`
	Target        string  `json:"target,omitempty"`
	Damping       float64 `json:"damping,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
	Alpha         float64 `json:"alpha,omitempty"`
	K             int     `json:"k,omitempty"`
}

func DegreeCentrality() Kind      { return Kind{Type: TypeDegreeCentrality} }
func BetweennessCentrality() Kind { return Kind{Type: TypeBetweennessCentrality} }
func EdgeBetweenness() Kind       { return Kind{Type: TypeEdgeBetweenness} }
func ClosenessCentrality() Kind   { return Kind{Type: TypeClosenessCentrality} }
func EigenvectorCentrality() Kind { return Kind{Type: TypeEigenvectorCentrality} }
func HarmonicCentrality() Kind    { return Kind{Type: TypeHarmonicCentrality} }

// PageRank ranks nodes with the given damping factor and iteration cap.
// Zero values take the engine defaults.
func PageRank(damping float64, maxIterations int) Kind {
	return Kind{Type: TypePageRank, Damping: damping, MaxIterations: maxIterations}
}

// KatzCentrality uses attenuation alpha; zero takes the engine default.
func KatzCentrality(alpha float64) Kind {
	return Kind{Type: TypeKatzCentrality, Alpha: alpha}
}

func LouvainCommunityDetection() Kind { return Kind{Type: TypeLouvainCommunityDetection} }
func ModularityOptimization() Kind    { return Kind{Type: TypeModularityOptimization} }
func LabelPropagation() Kind          { return Kind{Type: TypeLabelPropagation} }
func GirvanNewman() Kind              { return Kind{Type: TypeGirvanNewman} }

// SpectralClustering splits the nodes into k blocks.
func SpectralClustering(k int) Kind { return Kind{Type: TypeSpectralClustering, K: k} }

// EdgeBetweennessClustering removes the highest-betweenness edge until k
// components remain.
func EdgeBetweennessClustering(k int) Kind {
	return Kind{Type: TypeEdgeBetweennessClustering, K: k}
}

func ShortestPaths(source string) Kind { return Kind{Type: TypeShortestPaths, Source: source} }
func AllPairsShortestPaths() Kind      { return Kind{Type: TypeAllPairsShortestPaths} }

func DijkstraShortestPath(source, target string) Kind {
	return Kind{Type: TypeDijkstraShortestPath, Source: source, Target: target}
}

func BellmanFordShortestPath(source string) Kind {
	return Kind{Type: TypeBellmanFordShortestPath, Source: source}
}

func FloydWarshallShortestPath() Kind   { return Kind{Type: TypeFloydWarshallShortestPath} }
func ConnectedComponents() Kind         { return Kind{Type: TypeConnectedComponents} }
func StronglyConnectedComponents() Kind { return Kind{Type: TypeStronglyConnectedComponents} }
func ArticulationPoints() Kind          { return Kind{Type: TypeArticulationPoints} }
func Bridges() Kind                     { return Kind{Type: TypeBridges} }
func MinimumSpanningTree() Kind         { return Kind{Type: TypeMinimumSpanningTree} }
func ClusteringCoefficient() Kind       { return Kind{Type: TypeClusteringCoefficient} }
func NetworkDensity() Kind              { return Kind{Type: TypeNetworkDensity} }
func Diameter() Kind                    { return Kind{Type: TypeDiameter} }
func Radius() Kind                      { return Kind{Type: TypeRadius} }
func Assortativity() Kind               { return Kind{Type: TypeAssortativity} }
func SmallWorldness() Kind              { return Kind{Type: TypeSmallWorldness} }
func NetworkSummary() Kind              { return Kind{Type: TypeNetworkSummary} }

func MaximumFlow(source, sink string) Kind {
	return Kind{Type: TypeMaximumFlow, Source: source, Target: sink}
}

func MinimumCut(source, sink string) Kind {
	return Kind{Type: TypeMinimumCut, Source: source, Target: sink}
}

func NetworkMotifs() Kind     { return Kind{Type: TypeNetworkMotifs} }
func TriadicCensus() Kind     { return Kind{Type: TypeTriadicCensus} }
func FullTriadicCensus() Kind { return Kind{Type: TypeFullTriadicCensus} }

// KCore returns the nodes whose core number is at least k.
func KCore(k int) Kind { return Kind{Type: TypeKCore, K: k} }

var paramNames = []struct {
	bit  param
	name string
}{
	{paramSource, "source"},
	{paramTarget, "target"},
	{paramDamping, "damping"},
	{paramMaxIterations, "max_iterations"},
	{paramAlpha, "alpha"},
	{paramK, "k"},
}

// ParameterNames lists the Kind fields t reads.
func (t Type) ParameterNames() []string {
	var names []string
	for _, p := range paramNames {
		if typeParams[t]&p.bit != 0 {
			names = append(names, p.name)
		}
	}
	return names
}

func (k Kind) uses(p param) bool { return typeParams[k.Type]&p != 0 }

// key zeroes every field the type does not read.
func (k Kind) key() Kind {
	out := Kind{Type: k.Type}
	if k.uses(paramSource) {
		out.Source = k.Source
	}
	if k.uses(paramTarget) {
		out.Target = k.Target
	}
	if k.uses(paramDamping) {
		out.Damping = k.Damping
	}
	if k.uses(paramMaxIterations) {
		out.MaxIterations = k.MaxIterations
	}
	if k.uses(paramAlpha) {
		out.Alpha = k.Alpha
	}
	if k.uses(paramK) {
		out.K = k.K
	}
	return out
}

// withDefaults fills unset numeric parameters.
func (k Kind) withDefaults(damping float64, maxIterations int, alpha float64) Kind {
	k = k.key()
	if k.uses(paramDamping) {
		k.Damping = validation.DefaultOr(k.Damping, damping)
	}
	if k.uses(paramMaxIterations) {
		k.MaxIterations = validation.DefaultOr(k.MaxIterations, maxIterations)
	}
	if k.uses(paramAlpha) {
		k.Alpha = validation.DefaultOr(k.Alpha, alpha)
	}
	return k
}

// Validate checks the parameters the type reads.
func (k Kind) Validate() error {
	if !known(k.Type) {
		return fmt.Errorf("%w: %q", ErrUnsupportedAnalysis, k.Type)
	}

	pv := validation.NewParamValidator(string(k.Type))
	if k.uses(paramSource) {
		pv.Required("source", k.Source)
	}
	if k.uses(paramTarget) {
		pv.Required("target", k.Target)
	}
	if k.uses(paramDamping) {
		pv.OpenRange("damping", k.Damping, 0, 1)
	}
	if k.uses(paramMaxIterations) {
		pv.Positive("max_iterations", k.MaxIterations)
	}
	if k.uses(paramAlpha) {
		pv.PositiveFloat("alpha", k.Alpha)
	}
	if k.uses(paramK) {
		if k.Type == TypeKCore {
			pv.NonNegative("k", k.K)
		} else {
			pv.Positive("k", k.K)
		}
	}
	if err := pv.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return nil
}

// Parameters renders the fields the type reads.
func (k Kind) Parameters() map[string]string {
	params := make(map[string]string)
	if k.uses(paramSource) {
		params["source"] = k.Source
	}
	if k.uses(paramTarget) {
		params["target"] = k.Target
	}
	if k.uses(paramDamping) {
		params["damping"] = formatFloat(k.Damping)
	}
	if k.uses(paramMaxIterations) {
		params["max_iterations"] = strconv.Itoa(k.MaxIterations)
	}
	if k.uses(paramAlpha) {
		params["alpha"] = formatFloat(k.Alpha)
	}
	if k.uses(paramK) {
		params["k"] = strconv.Itoa(k.K)
	}
	return params
}

// String renders the type followed by its parameters in key order, e.g.
// "KCore(k=3)".
func (k Kind) String() string {
	params := k.Parameters()
	if len(params) == 0 {
		return string(k.Type)
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = key + "=" + params[key]
	}
	return fmt.Sprintf("%s(%s)", k.Type, strings.Join(parts, ","))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// flightKey identifies kind within one graph generation. Every string is
// quoted, so node ids containing separators cannot make two kinds collide.
func (k Kind) flightKey(gen uint64) string {
	return fmt.Sprintf("%d|%q|%q|%q|%s|%d|%s|%d", gen, k.Type, k.Source, k.Target,
		formatFloat(k.Damping), k.MaxIterations, formatFloat(k.Alpha), k.K)
}
