package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML query file
type QueryParameters struct {
	Title      string      `yaml:"Title"`
	Tolerance  float64     `yaml:"Tolerance"`  // Containment residual tolerance, 0 = default
	MaxResults int         `yaml:"MaxResults"` // Cells returned per query point, 0 = 1
	Points     [][]float64 `yaml:"Points"`     // Query point coordinates
}

func (qp *QueryParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, qp); err != nil {
		return err
	}
	if qp.MaxResults == 0 {
		qp.MaxResults = 1
	}
	if len(qp.Points) == 0 {
		return fmt.Errorf("query file contains no points")
	}
	return nil
}

func (qp *QueryParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", qp.Title)
	fmt.Printf("%8.5g\t\t= Tolerance\n", qp.Tolerance)
	fmt.Printf("[%d]\t\t\t= MaxResults\n", qp.MaxResults)
	fmt.Printf("[%d]\t\t\t= Number of query points\n", len(qp.Points))
}
