package content

import (
	"strings"
	"unicode"
)

type ExperimentStatus string

const (
	ExperimentPublished   ExperimentStatus = "Published"
	ExperimentInProgress  ExperimentStatus = "In Progress"
	ExperimentUnderReview ExperimentStatus = "Under Review"
	ExperimentTheoretical ExperimentStatus = "Theoretical"
)

// Metric is a named measurement reported by an experiment. Values are kept as
// display strings ("90%", "< 100ms").
type Metric struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Label turns a camelCase metric name into words: "energyReduction" becomes
// "Energy Reduction".
func (m Metric) Label() string {
	var b strings.Builder
	for i, r := range m.Name {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

type Experiment struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Abstract string           `json:"abstract"`
	Tags     []string         `json:"tags"`
	Domain   string           `json:"domain"`
	Status   ExperimentStatus `json:"status"`
	Findings string           `json:"findings"`
	Dataset  string           `json:"dataset"`
	Metrics  []Metric         `json:"metrics"`
}

// Domain is a research pillar.
type Domain struct {
	ID          int      `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Projects    []string `json:"projects"`
	Insights    []string `json:"insights"`
}

// Teaser is the collapsed form of the description.
func (d Domain) Teaser() string {
	r := []rune(d.Description)
	if len(r) <= 100 {
		return d.Description
	}
	return string(r[:100]) + "..."
}

// Finding is a headline result shown under "Key Research Findings".
type Finding struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Badges    []string `json:"badges"`
	LinkLabel string   `json:"link_label"`
	LinkURL   string   `json:"link_url"`
}

// CodeLink is an entry of the "Code Repositories & Papers" list.
type CodeLink struct {
	Name           string `json:"name"`
	Summary        string `json:"summary"`
	CodeURL        string `json:"code_url"`
	SecondaryLabel string `json:"secondary_label"`
	SecondaryURL   string `json:"secondary_url"`
}

const ResearchMission = "Currently researching adaptive world models and spiking networks."

func Domains() []Domain         { return domains }
func Experiments() []Experiment { return experiments }
func Findings() []Finding       { return findings }
func CodeLinks() []CodeLink     { return codeLinks }

func DomainByID(id int) (Domain, bool) {
	for _, d := range domains {
		if d.ID == id {
			return d, true
		}
	}
	return Domain{}, false
}

func ExperimentByID(id string) (Experiment, bool) {
	for _, e := range experiments {
		if e.ID == id {
			return e, true
		}
	}
	return Experiment{}, false
}

var domains = []Domain{
	{
		ID:          0,
		Label:       "Spiking Neural Networks",
		Description: "Bio-inspired neural computation using temporal spike patterns. Exploring energy-efficient learning algorithms and neuromorphic hardware implementations.",
		Projects:    []string{"Temporal Pattern Recognition", "Energy-Efficient SNN Training"},
		Insights:    []string{"SNNs achieve 10x energy efficiency", "Temporal coding enables real-time processing"},
	},
	{
		ID:          1,
		Label:       "World Models & Embodied Learning",
		Description: "Learning predictive models of environment dynamics through embodied interaction. Focus on few-shot adaptation and transfer learning.",
		Projects:    []string{"Predictive World Models", "Embodied Agent Simulation"},
		Insights:    []string{"World models improve sample efficiency", "Embodiment accelerates learning"},
	},
	{
		ID:          2,
		Label:       "Reasoning & Meta-Learning",
		Description: "Developing systems that learn how to learn. Research into compositional reasoning and systematic generalization.",
		Projects:    []string{"Few-Shot Reasoning", "Compositional Learning"},
		Insights:    []string{"Meta-learning enables rapid adaptation", "Compositional structure improves generalization"},
	},
	{
		ID:          3,
		Label:       "Consciousness & AI Ethics",
		Description: "Exploring computational models of consciousness and their ethical implications. Research into self-awareness and moral reasoning in AI systems.",
		Projects:    []string{"Consciousness Metrics", "Ethical AI Framework"},
		Insights:    []string{"Consciousness may emerge from information integration", "Ethics must be built into AI from the ground up"},
	},
}

var experiments = []Experiment{
	{
		ID:       "e1",
		Title:    "Spiking Neural Network Pattern Recognition",
		Abstract: "Developed a bio-inspired SNN architecture for real-time pattern recognition with 90% accuracy and 10x energy efficiency compared to traditional ANNs. Uses temporal spike encoding for feature extraction.",
		Tags:     []string{"SNN", "Pattern Recognition", "Neuromorphic"},
		Domain:   "Spiking Neural Networks",
		Status:   ExperimentPublished,
		Findings: "Temporal coding significantly improves energy efficiency while maintaining accuracy",
		Dataset:  "MNIST-DVS, N-MNIST",
		Metrics: []Metric{
			{Name: "accuracy", Value: "90%"},
			{Name: "energyReduction", Value: "10x"},
			{Name: "latency", Value: "5ms"},
		},
	},
	{
		ID:       "e2",
		Title:    "World Model for Embodied Agent Navigation",
		Abstract: "Implemented predictive world models enabling sample-efficient navigation in complex environments. Agent learns environment dynamics through embodied interaction and generalizes to unseen scenarios.",
		Tags:     []string{"World Models", "Embodied AI", "Navigation"},
		Domain:   "World Models & Embodied Learning",
		Status:   ExperimentInProgress,
		Findings: "Embodied learning reduces sample complexity by 5x compared to model-free approaches",
		Dataset:  "Custom 3D environments, DeepMind Lab",
		Metrics: []Metric{
			{Name: "sampleEfficiency", Value: "5x improvement"},
			{Name: "successRate", Value: "85%"},
			{Name: "transferSuccess", Value: "70%"},
		},
	},
	{
		ID:       "e3",
		Title:    "Meta-Learning for Few-Shot Reasoning Tasks",
		Abstract: "Developed a meta-learning framework that enables rapid adaptation to new reasoning tasks with minimal examples. Combines gradient-based meta-learning with compositional representations.",
		Tags:     []string{"Meta-Learning", "Few-Shot", "Reasoning"},
		Domain:   "Reasoning & Meta-Learning",
		Status:   ExperimentUnderReview,
		Findings: "Compositional meta-learning achieves human-level performance on novel reasoning tasks",
		Dataset:  "ARC, SCAN, bAbI",
		Metrics: []Metric{
			{Name: "fewShotAccuracy", Value: "92%"},
			{Name: "adaptationTime", Value: "< 100 examples"},
			{Name: "generalization", Value: "95%"},
		},
	},
	{
		ID:       "e4",
		Title:    "Consciousness Measurement Framework",
		Abstract: "Developed computational metrics for measuring consciousness-like properties in AI systems based on Integrated Information Theory and Global Workspace Theory.",
		Tags:     []string{"Consciousness", "IIT", "Measurement"},
		Domain:   "Consciousness & AI Ethics",
		Status:   ExperimentTheoretical,
		Findings: "Integrated information correlates with emergent self-awareness behaviors",
		Dataset:  "Synthetic cognitive architectures",
		Metrics: []Metric{
			{Name: "phiValue", Value: "0.73"},
			{Name: "selfAwareness", Value: "Medium"},
			{Name: "consistency", Value: "88%"},
		},
	},
	{
		ID:       "e5",
		Title:    "Compression with Self-Organizing Maps",
		Abstract: "Novel approach using SOMs to reduce high-dimensional sensory input while preserving semantic structure. Enables efficient online learning in resource-constrained environments.",
		Tags:     []string{"Compression", "SOM", "Unsupervised"},
		Domain:   "World Models & Embodied Learning",
		Status:   ExperimentPublished,
		Findings: "SOM-based compression maintains 95% semantic fidelity at 50x compression ratio",
		Dataset:  "ImageNet, CIFAR-100, Custom sensor data",
		Metrics: []Metric{
			{Name: "compressionRatio", Value: "50x"},
			{Name: "semanticFidelity", Value: "95%"},
			{Name: "reconstructionError", Value: "< 0.05"},
		},
	},
	{
		ID:       "e6",
		Title:    "Ethical Reasoning in Autonomous Systems",
		Abstract: "Framework for embedding ethical reasoning capabilities into autonomous systems using deontic logic and value alignment techniques.",
		Tags:     []string{"Ethics", "Autonomous Systems", "Value Alignment"},
		Domain:   "Consciousness & AI Ethics",
		Status:   ExperimentInProgress,
		Findings: "Deontic logic enables consistent ethical decision-making under uncertainty",
		Dataset:  "Moral Machine dataset, Custom ethical dilemmas",
		Metrics: []Metric{
			{Name: "ethicalConsistency", Value: "87%"},
			{Name: "humanAlignment", Value: "82%"},
			{Name: "decisionTime", Value: "< 100ms"},
		},
	},
}

var findings = []Finding{
	{
		Title:     "Spiking Neural Networks",
		Summary:   "Temporal spike encoding achieves 10x energy efficiency while maintaining 90% accuracy on pattern recognition tasks.",
		Badges:    []string{"90% accuracy", "10x efficiency"},
		LinkLabel: "Paper",
		LinkURL:   "/papers/snn-temporal-encoding-2024.pdf",
	},
	{
		Title:     "World Models",
		Summary:   "Embodied learning reduces sample complexity by 5x compared to model-free approaches in navigation tasks.",
		Badges:    []string{"5x sample efficiency", "85% success rate"},
		LinkLabel: "Demo",
		LinkURL:   "https://demo.embodied-world-models.com",
	},
	{
		Title:     "Meta-Learning",
		Summary:   "Compositional meta-learning achieves 92% accuracy on novel reasoning tasks.",
		Badges:    []string{"92% accuracy", "Under Review"},
		LinkLabel: "Paper",
		LinkURL:   "/papers/meta-learning-compositional-2024.pdf",
	},
	{
		Title:     "Consciousness Metrics",
		Summary:   "Integrated Information Theory correlates with emergent self-awareness behaviors.",
		Badges:    []string{"Φ = 0.73", "Theoretical"},
		LinkLabel: "Theory",
		LinkURL:   "/papers/consciousness-measurement-framework-2024.pdf",
	},
}

var codeLinks = []CodeLink{
	{"SNN-Pattern-Recognition", "Temporal spike encoding implementation", "https://github.com/research-lab/snn-pattern-recognition", "Paper", "/papers/snn-temporal-encoding-2024.pdf"},
	{"Embodied-World-Models", "Predictive navigation framework", "https://github.com/research-lab/embodied-world-models", "Demo", "https://demo.embodied-world-models.com"},
	{"Meta-Learning-Framework", "Few-shot reasoning implementation", "https://github.com/research-lab/meta-learning-framework", "Paper", "/papers/meta-learning-compositional-2024.pdf"},
	{"Consciousness-Metrics", "IIT-based measurement tools", "https://github.com/research-lab/consciousness-metrics", "Theory", "/papers/consciousness-measurement-framework-2024.pdf"},
	{"SOM-Compression", "Self-organizing maps for dimensionality reduction", "https://github.com/research-lab/som-compression", "Paper", "/papers/som-semantic-compression-2024.pdf"},
	{"Ethical-AI-Framework", "Deontic logic for autonomous systems", "https://github.com/research-lab/ethical-ai-framework", "Paper", "/papers/ethical-reasoning-autonomous-systems-2024.pdf"},
}
