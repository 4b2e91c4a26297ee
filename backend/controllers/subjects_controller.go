package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/services"
	"syllabus-tracker/backend/utils"
)

// SubjectsController exposes the syllabus and its topic mutations. A
// mutation aimed at an unknown subject or topic answers 200 with
// applied=false and changes nothing.
type SubjectsController struct {
	Store    *services.SyllabusStore
	Notifier *services.Notifier
}

func NewSubjectsController(store *services.SyllabusStore, notifier *services.Notifier) *SubjectsController {
	return &SubjectsController{Store: store, Notifier: notifier}
}

// GetSubjects godoc
// @Summary List subjects
// @Description Returns every subject with its topics, seeding the defaults on first use
// @Tags subjects
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.Subject}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /subjects [get]
func (sc *SubjectsController) GetSubjects(c *fiber.Ctx) error {
	subjects, err := sc.Store.GetSubjects(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, subjects)
}

// SaveSubjects godoc
// @Summary Replace subjects
// @Description Overwrites the whole syllabus
// @Tags subjects
// @Accept json
// @Produce json
// @Param subjects body []models.Subject true "Complete subject list"
// @Success 200 {object} utils.SuccessResponse{data=[]models.Subject}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /subjects [put]
func (sc *SubjectsController) SaveSubjects(c *fiber.Ctx) error {
	subjects := []models.Subject{}
	if err := c.BodyParser(&subjects); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := utils.ValidateEach(subjects); err != nil {
		return utils.ValidationError(c, utils.FieldErrors(err))
	}

	if err := sc.Store.SaveSubjects(c.UserContext(), subjects); err != nil {
		return serviceError(c, err)
	}
	return utils.OK(c, "Subjects saved", subjects)
}

// AddTopic godoc
// @Summary Add topic
// @Description Appends a topic to a subject and logs an "added" activity
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param topic body models.Topic true "Topic data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /subjects/{id}/topics [post]
func (sc *SubjectsController) AddTopic(c *fiber.Ctx) error {
	var topic models.Topic
	if ok, err := parseAndValidate(c, &topic); !ok {
		return err
	}

	created, err := sc.Store.AddTopic(c.UserContext(), c.Params("id"), topic)
	if err != nil {
		return serviceError(c, err)
	}
	if created == nil {
		return utils.Success(c, fiber.StatusOK, applied(false, nil))
	}

	sc.Notifier.Push(models.NotificationSuccess, "Topic Added", created.Name+" has been added to the syllabus")
	return utils.Success(c, fiber.StatusCreated, applied(true, created))
}

// UpdateTopic godoc
// @Summary Update topic
// @Description Merges the given fields onto a topic. Marking it completed logs an activity.
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param topicId path string true "Topic ID"
// @Param update body models.TopicUpdate true "Fields to change"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /subjects/{id}/topics/{topicId} [put]
func (sc *SubjectsController) UpdateTopic(c *fiber.Ctx) error {
	var update models.TopicUpdate
	if ok, err := parseAndValidate(c, &update); !ok {
		return err
	}

	updated, err := sc.Store.UpdateTopic(c.UserContext(), c.Params("id"), c.Params("topicId"), update)
	if err != nil {
		return serviceError(c, err)
	}
	if updated == nil {
		return utils.Success(c, fiber.StatusOK, applied(false, nil))
	}

	sc.Notifier.Push(models.NotificationSuccess, "Topic Updated", updated.Name+" has been updated")
	return utils.Success(c, fiber.StatusOK, applied(true, updated))
}

// ToggleTopic godoc
// @Summary Toggle topic completion
// @Description Marks a topic complete by the caller today, or clears its completion
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param topicId path string true "Topic ID"
// @Param request body models.ToggleRequest true "Target state"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /subjects/{id}/topics/{topicId}/toggle [post]
func (sc *SubjectsController) ToggleTopic(c *fiber.Ctx) error {
	var input models.ToggleRequest
	if ok, err := parseAndValidate(c, &input); !ok {
		return err
	}

	completed := *input.Completed
	topic, err := sc.Store.ToggleTopic(c.UserContext(), c.Params("id"), c.Params("topicId"), completed, requestUser(c).Name)
	if err != nil {
		return serviceError(c, err)
	}
	if topic == nil {
		return utils.Success(c, fiber.StatusOK, applied(false, nil))
	}

	if completed {
		sc.Notifier.Push(models.NotificationSuccess, "Topic Completed!", topic.Name+" has been marked as complete")
	} else {
		sc.Notifier.Push(models.NotificationInfo, "Topic Unmarked", topic.Name+" has been unmarked")
	}
	return utils.Success(c, fiber.StatusOK, applied(true, topic))
}

// DeleteTopic godoc
// @Summary Delete topic
// @Tags subjects
// @Produce json
// @Param id path string true "Subject ID"
// @Param topicId path string true "Topic ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /subjects/{id}/topics/{topicId} [delete]
func (sc *SubjectsController) DeleteTopic(c *fiber.Ctx) error {
	ctx := c.UserContext()
	subjectID, topicID := c.Params("id"), c.Params("topicId")

	// name for the notice; the delete itself is idempotent
	name := ""
	if subjects, err := sc.Store.GetSubjects(ctx); err == nil {
		for _, s := range subjects {
			for _, t := range s.Topics {
				if s.ID == subjectID && t.ID == topicID {
					name = t.Name
				}
			}
		}
	}

	ok, err := sc.Store.DeleteTopic(ctx, subjectID, topicID)
	if err != nil {
		return serviceError(c, err)
	}
	if ok {
		sc.Notifier.Push(models.NotificationWarning, "Topic Deleted", name+" has been removed from the syllabus")
	}
	return utils.Success(c, fiber.StatusOK, applied(ok, nil))
}

// CompleteAll godoc
// @Summary Mark all topics complete
// @Description Completes every pending topic on behalf of the caller
// @Tags subjects
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /topics/complete-all [post]
func (sc *SubjectsController) CompleteAll(c *fiber.Ctx) error {
	count, err := sc.Store.MarkAllComplete(c.UserContext(), requestUser(c).Name)
	if err != nil {
		return serviceError(c, err)
	}

	if count > 0 {
		sc.Notifier.Push(models.NotificationSuccess, "Bulk Update Complete", fmt.Sprintf("Marked %d topics as complete", count))
	} else {
		sc.Notifier.Push(models.NotificationInfo, "No Updates Needed", "All topics are already completed")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"completed": count})
}

// GetActivities godoc
// @Summary Recent activity
// @Description Returns the activity log, newest first
// @Tags subjects
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.Activity}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /activities [get]
func (sc *SubjectsController) GetActivities(c *fiber.Ctx) error {
	activities, err := sc.Store.GetActivities(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, activities)
}
