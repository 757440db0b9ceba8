package charting

import (
	"io"
	"os"
	"path"
	"time"

	"github.com/go-echarts/go-echarts/charts"
	log "github.com/sirupsen/logrus"

	"godreidel/dreidel"
	"godreidel/storage"
	"godreidel/utils"
)

const ChartsPath = "charts"

// Service renders face-distribution charts for recorded sessions. Charts go
// to HTML files under the home folder; there is no HTTP surface.
type Service struct {
	summaries *storage.SummaryCache
}

func NewService(summaries *storage.SummaryCache) *Service {
	return &Service{summaries: summaries}
}

func (cs *Service) BuildChart(sessionName string, counts map[string]uint64) *charts.Bar {
	barChart := charts.NewBar()
	barChart.SetGlobalOptions(
		charts.InitOpts{
			Width:  "100wh",
			Height: "85vh",
		},
		charts.TitleOpts{Title: "Spins by face, " + sessionName},
		charts.ToolboxOpts{
			Show: true,
		},
	)
	var faces []string
	var spins []uint64
	for _, face := range dreidel.Faces {
		faces = append(faces, face.String())
		spins = append(spins, counts[face.String()])
	}
	barChart.AddXAxis(faces).AddYAxis("spins", spins)
	return barChart
}

func (cs *Service) Render(sessionName string, w io.Writer) error {
	counts, err := cs.summaries.SessionCounts(sessionName)
	if err != nil {
		return err
	}
	return cs.BuildChart(sessionName, counts).Render(w)
}

// RenderSession writes the session chart to its HTML file and returns the
// file path.
func (cs *Service) RenderSession(sessionName string) (string, error) {
	startTime := time.Now()
	chartPath := path.Join(utils.GetSubFolder(ChartsPath), sessionName+".html")
	f, err := os.Create(chartPath)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Error closing chart file")
		}
	}()
	if err := cs.Render(sessionName, f); err != nil {
		return "", err
	}
	log.WithFields(log.Fields{
		"elapsedTime": time.Since(startTime),
		"path":        chartPath,
	}).Println("Rendered chart")
	return chartPath, nil
}
