package db

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	pipelinestore "wfp-backend/lib/pipeline/store"
	"wfp-backend/models"
	dbmodels "wfp-backend/models/db"
)

func InitPreload() {
	fillDefaultPipelineTemplate()
}

// fillDefaultPipelineTemplate seeds the internal template pipeline used when
// a client has no funnel of its own yet.
func fillDefaultPipelineTemplate() {
	log.Info("preloading default pipeline template")
	store := pipelinestore.NewInstance(DB)
	existing, err := store.FindByName(dbmodels.DefaultTemplateName)
	if err != nil {
		log.WithError(err).Error("default template preload failed")
		return
	}
	if existing != nil {
		log.Info("default template already present")
		return
	}

	lines, err := readCsvFile("./static_preload/pipeline_stages.csv", ';')
	if err != nil {
		log.WithError(err).Error("failed to load the stage template file")
		return
	}

	pipelineID, err := store.Create(dbmodels.TalentPipeline{
		Name:        dbmodels.DefaultTemplateName,
		Description: "Standard recruiting funnel",
		IsInternal:  true,
		IsActive:    true,
		CreatedBy:   "system",
	})
	if err != nil {
		log.WithError(err).Error("failed to create the default template")
		return
	}

	for k, line := range lines {
		order, err := strconv.Atoi(line[1])
		if err != nil {
			log.WithError(err).Errorf("failed to parse the stage template file, line %v", k)
			return
		}
		rate, err := strconv.ParseFloat(line[2], 64)
		if err != nil {
			log.WithError(err).Errorf("failed to parse the stage template file, line %v", k)
			return
		}
		tat, err := strconv.Atoi(line[3])
		if err != nil {
			log.WithError(err).Errorf("failed to parse the stage template file, line %v", k)
			return
		}
		rec := dbmodels.PipelineStage{
			PipelineID:     pipelineID,
			Name:           line[0],
			StageOrder:     order,
			ConversionRate: rate,
			TatDays:        tat,
			IsSpecial:      line[4] == "1",
			MapsToStatus:   models.CandidateStatus(line[5]),
			Description:    line[6],
		}
		if _, err := store.AddStage(rec); err != nil {
			log.
				WithError(err).
				WithField("stage", rec.Name).
				Error("failed to add a template stage")
			return
		}
	}

	log.Info("default pipeline template created")
}

func readCsvFile(filePath string, comma rune) ([][]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the file")
	}
	defer f.Close()

	csvReader := csv.NewReader(f)
	csvReader.Comma = comma
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the file")
	}

	return records, nil
}
