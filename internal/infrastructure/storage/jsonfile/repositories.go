package jsonfile

import (
	"path/filepath"

	"classkeeper/internal/domain/session"
	"classkeeper/internal/domain/student"
	"classkeeper/internal/domain/subject"
)

// Collection file names under the data directory. The session mapping keeps
// its own subdirectory, matching the layout earlier deployments used.
const (
	subjectsFile = "subjects.json"
	studentsFile = "students.json"
	sessionsFile = "session/session.json"
)

// Repositories bundles the flat-file repository implementations sharing one
// data directory and one lock registry.
type Repositories struct {
	Subjects subject.Repository
	Students student.Repository
	Sessions session.Repository
}

func NewRepositories(dataDir string, locks *LockRegistry) *Repositories {
	subjectsPath := filepath.Join(dataDir, subjectsFile)
	studentsPath := filepath.Join(dataDir, studentsFile)
	sessionsPath := filepath.Join(dataDir, filepath.FromSlash(sessionsFile))

	return &Repositories{
		Subjects: &subjectRepository{
			path:  subjectsPath,
			locks: locks,
		},
		Students: &studentRepository{
			path:         studentsPath,
			sessionsPath: sessionsPath,
			locks:        locks,
		},
		Sessions: &sessionRepository{
			path:         sessionsPath,
			studentsPath: studentsPath,
			locks:        locks,
		},
	}
}
