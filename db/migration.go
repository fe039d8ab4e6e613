package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "wfp-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Client{}); err != nil {
		return errors.Wrap(err, "migration failed for Client")
	}
	if err := DB.AutoMigrate(&dbmodels.TalentPipeline{}); err != nil {
		return errors.Wrap(err, "migration failed for TalentPipeline")
	}
	if err := DB.AutoMigrate(&dbmodels.PipelineStage{}); err != nil {
		return errors.Wrap(err, "migration failed for PipelineStage")
	}
	if err := DB.AutoMigrate(&dbmodels.PipelinePlan{}); err != nil {
		return errors.Wrap(err, "migration failed for PipelinePlan")
	}
	if err := DB.AutoMigrate(&dbmodels.PipelinePlanRow{}); err != nil {
		return errors.Wrap(err, "migration failed for PipelinePlanRow")
	}
	if err := DB.AutoMigrate(&dbmodels.StaffingPlan{}); err != nil {
		return errors.Wrap(err, "migration failed for StaffingPlan")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "migration failed for Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.StoredFile{}); err != nil {
		return errors.Wrap(err, "migration failed for StoredFile")
	}
	log.Info("migrations finished")
	return nil
}
