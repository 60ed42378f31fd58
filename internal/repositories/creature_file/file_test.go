package creaturefile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	creaturefile "github.com/KirkDiggler/rpg-statblock/internal/repositories/creature_file"
	"github.com/KirkDiggler/rpg-statblock/internal/testutils"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo creaturefile.Repository
	ctx  context.Context
}

func TestFileRepositorySuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.ctx = context.Background()

	repo, err := creaturefile.NewFileRepository(&creaturefile.Config{BaseDir: s.dir})
	s.Require().NoError(err)
	s.repo = repo

	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "goblin.json"), []byte(testutils.GoblinJSON), 0o600))
}

func (s *FileRepositoryTestSuite) TestGetRelativePath() {
	out, err := s.repo.Get(s.ctx, creaturefile.GetInput{Path: "goblin.json"})
	s.Require().NoError(err)
	s.Assert().Equal(filepath.Join(s.dir, "goblin.json"), out.Path)
	s.Assert().Equal(testutils.GoblinJSON, string(out.Data))
}

func (s *FileRepositoryTestSuite) TestGetAbsolutePath() {
	other, err := creaturefile.NewFileRepository(&creaturefile.Config{BaseDir: s.T().TempDir()})
	s.Require().NoError(err)

	abs := filepath.Join(s.dir, "goblin.json")
	out, err := other.Get(s.ctx, creaturefile.GetInput{Path: abs})
	s.Require().NoError(err)
	s.Assert().Equal(abs, out.Path)
}

func (s *FileRepositoryTestSuite) TestGetMissingFile() {
	_, err := s.repo.Get(s.ctx, creaturefile.GetInput{Path: "owlbear.json"})
	s.Require().Error(err)
	s.Assert().True(errors.IsIO(err))
	s.Assert().Equal(filepath.Join(s.dir, "owlbear.json"), errors.GetMeta(err)["path"])
	s.Assert().True(errors.Is(err, os.ErrNotExist))
}

func (s *FileRepositoryTestSuite) TestGetInvalidUTF8() {
	data := []byte("{\"Name\": \"Gob\xfflin\"}")
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "latin1.json"), data, 0o600))

	out, err := s.repo.Get(s.ctx, creaturefile.GetInput{Path: "latin1.json"})
	s.Require().Error(err)
	s.Assert().Nil(out)
	s.Assert().True(errors.IsIO(err))
	s.Assert().Contains(err.Error(), "not valid UTF-8")
	s.Assert().Equal(filepath.Join(s.dir, "latin1.json"), errors.GetMeta(err)["path"])
}

func (s *FileRepositoryTestSuite) TestGetDirectory() {
	s.Require().NoError(os.Mkdir(filepath.Join(s.dir, "monsters"), 0o700))

	_, err := s.repo.Get(s.ctx, creaturefile.GetInput{Path: "monsters"})
	s.Require().Error(err)
	s.Assert().True(errors.IsIO(err))
}

func (s *FileRepositoryTestSuite) TestGetEmptyPath() {
	_, err := s.repo.Get(s.ctx, creaturefile.GetInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestGetCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.repo.Get(ctx, creaturefile.GetInput{Path: "goblin.json"})
	s.Require().Error(err)
	s.Assert().True(errors.IsCanceled(err))
}

func (s *FileRepositoryTestSuite) TestDefaultsToWorkingDirectory() {
	repo, err := creaturefile.NewFileRepository(nil)
	s.Require().NoError(err)

	wd, err := os.Getwd()
	s.Require().NoError(err)

	_, err = repo.Get(s.ctx, creaturefile.GetInput{Path: "definitely-not-here.json"})
	s.Require().Error(err)
	s.Assert().Equal(filepath.Join(wd, "definitely-not-here.json"), errors.GetMeta(err)["path"])
}
